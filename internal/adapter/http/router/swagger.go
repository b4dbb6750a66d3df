package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Money Transfer Service API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Money Transfer Service",
    "description": "Endpoints for moving money from account to account, and getting account details",
    "version": "1.0.0"
  },
  "paths": {
    "/account/transfer": {
      "post": {
        "tags": ["money-transfer"],
        "summary": "Creates a transfer between the source and target account with the given amount.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["currency", "amount", "sourceAccount", "targetAccount"],
                "properties": {
                  "currency": {"type": "string", "example": "EUR"},
                  "amount": {"type": "number", "example": 1000.0},
                  "sourceAccount": {"type": "string", "example": "11aa23"},
                  "targetAccount": {"type": "string", "example": "11aa24"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "The transfer between the source account and the target was made"},
          "400": {"description": "The source account doesn't have enough funds, or invalid input parameters"},
          "404": {"description": "Either the source or the target couldn't be found"},
          "500": {"description": "An internal server error happened"}
        }
      }
    },
    "/account/{id}": {
      "get": {
        "tags": ["money-transfer"],
        "summary": "Get the details for the account with the given account id.",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {"type": "string", "maxLength": 100}
          }
        ],
        "responses": {
          "200": {"description": "The account details for the given account id"},
          "400": {"description": "The account id contains a wrong format"},
          "404": {"description": "The provided account id doesn't exist"},
          "500": {"description": "An internal server error happened"}
        }
      }
    }
  }
}`

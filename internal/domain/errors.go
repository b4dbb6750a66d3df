package domain

import "errors"

var ErrRecordNotFound = errors.New("record not found")
var ErrInsufficientFunds = errors.New("insufficient funds")

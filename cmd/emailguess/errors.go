package main

import "errors"

var (
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrUnknownChecker = errors.New("unknown checker")
	ErrNoNames        = errors.New("no names given")
)

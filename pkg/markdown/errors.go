package markdown

import "errors"

var (
	ErrConversion   = errors.New("markdown: conversion failed")
	ErrUnknownStyle = errors.New("markdown: unknown highlight style")
)

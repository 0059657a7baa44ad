package logger

var Configure = configure

// Package main содержит точку входа jiractl — консольного клиента Jira REST API.
//
// Каждая команда соответствует одной операции Jira. Результат выводится
// в stdout как JSON (или текст с --output text), логи пишутся в stderr.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, newCLI())
	stop()
	os.Exit(code)
}

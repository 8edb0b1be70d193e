/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Seednode/codenames/games/codenames"
)

func logf(cfg *Config, format string, args ...any) {
	if !cfg.verbose {
		return
	}

	log.Printf("%s | "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}

// logger adapts logf for packages that take a printf-style hook.
func logger(cfg *Config) func(format string, args ...any) {
	return func(format string, args ...any) {
		logf(cfg, format, args...)
	}
}

// statusFor maps game errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, codenames.ErrNoSuchGame):
		return http.StatusNotFound
	case errors.Is(err, codenames.ErrPlayerAlreadyInGame):
		return http.StatusConflict
	case isGameError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var gameErrors = []error{
	codenames.ErrGameAlreadyStarted,
	codenames.ErrGameNotStarted,
	codenames.ErrGameOver,
	codenames.ErrIllegalPlayerGroup,
	codenames.ErrInvalidAction,
	codenames.ErrInvalidClue,
	codenames.ErrNoSuchPlayer,
	codenames.ErrNotEnoughPlayers,
	codenames.ErrNotHost,
	codenames.ErrTileAlreadyRevealed,
	codenames.ErrTileIndexOutOfBounds,
}

func isGameError(err error) bool {
	for _, target := range gameErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func newPage(title, body string) string {
	var htmlBody strings.Builder

	htmlBody.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	htmlBody.WriteString(`<style>`)
	htmlBody.WriteString(`html,body,a{display:block;height:100%;width:100%;text-decoration:none;color:inherit;cursor:auto;}</style>`)
	htmlBody.WriteString(fmt.Sprintf("<title>%s</title></head>", title))
	htmlBody.WriteString(fmt.Sprintf("<body><a href=\"/\">%s</a></body></html>", body))

	return htmlBody.String()
}

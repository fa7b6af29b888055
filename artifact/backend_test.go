package artifact_test

import (
	"regexp"
	"testing"

	"github.com/flexstack/auto-docker/artifact"
	"github.com/flexstack/auto-docker/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBackendDockerfile(t *testing.T) {
	tests := []struct {
		name     string
		kind     stack.BackendKind
		binary   string
		expected []any
	}{
		{
			name:     "NodeJS",
			kind:     stack.BackendNodeJS,
			expected: []any{`FROM node:18-alpine`, `EXPOSE 3000`, `CMD ["npm", "start"]`},
		},
		{
			name:     "Python",
			kind:     stack.BackendPython,
			expected: []any{`FROM python:3.11-slim`, `pip install --no-cache-dir -r requirements.txt`, `EXPOSE 5000`, `CMD ["python", "app.py"]`},
		},
		{
			name: "Java",
			kind: stack.BackendJava,
			expected: []any{
				`FROM maven:3.8.4-openjdk-17 AS builder`,
				`FROM openjdk:17-jre-slim`,
				`EXPOSE 8080`,
				`CMD ["java", "-Dserver.port=8080", "-jar", "app.jar"]`,
			},
		},
		{
			name:     "Go",
			kind:     stack.BackendGo,
			expected: []any{`FROM golang:1.21-alpine AS builder`, regexp.MustCompile(`^FROM alpine:latest$`), `EXPOSE 8080`, `CMD ["./main"]`},
		},
		{
			name: "PHP",
			kind: stack.BackendPHP,
			expected: []any{
				`FROM php:8.2-apache`,
				`Listen 8000`,
				`<VirtualHost *:8000>`,
				`EXPOSE 8000`,
				`CMD ["apache2-foreground"]`,
			},
		},
		{
			name:   "DotNet",
			kind:   stack.BackendDotNet,
			binary: "Web",
			expected: []any{
				`FROM mcr.microsoft.com/dotnet/sdk:7.0 AS builder`,
				`FROM mcr.microsoft.com/dotnet/aspnet:7.0`,
				`ENV ASPNETCORE_URLS=http://+:5000`,
				`EXPOSE 5000`,
				`CMD ["dotnet", "Web.dll"]`,
			},
		},
		{
			name:   "Rust",
			kind:   stack.BackendRust,
			binary: "todo-api",
			expected: []any{
				`FROM rust:1.70-alpine AS builder`,
				regexp.MustCompile(`^FROM alpine:latest$`),
				`COPY --from=builder /app/target/release/todo-api .`,
				`EXPOSE 8080`,
				`CMD ["./todo-api"]`,
			},
		},
		{
			name:     "Rust without a binary name",
			kind:     stack.BackendRust,
			expected: []any{`COPY --from=builder /app/target/release/app .`, `CMD ["./app"]`},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := profile("", test.kind, "")
			p.BinaryName = test.binary

			dockerfile, err := artifact.GenerateBackendDockerfile(p)
			require.NoError(t, err)
			assertLines(t, dockerfile, test.expected...)
			assert.NotContains(t, dockerfile, "{{")
		})
	}
}

func TestGenerateBackendDockerfileInterpolatesPort(t *testing.T) {
	for _, kind := range stack.BackendKinds() {
		t.Run(string(kind), func(t *testing.T) {
			p := profile("", kind, "")
			p.BackendPort = 7777

			dockerfile, err := artifact.GenerateBackendDockerfile(p)
			require.NoError(t, err)
			assertLines(t, dockerfile, regexp.MustCompile(`^EXPOSE 7777$`))
		})
	}
}

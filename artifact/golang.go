package artifact

import "strings"

var golangTemplate = strings.TrimSpace(`
# Go backend Dockerfile
FROM golang:1.21-alpine AS builder

WORKDIR /app

# Copy go mod files
COPY go.mod go.sum* ./

# Download dependencies
RUN go mod download

# Copy source code
COPY . .

# CGO_ENABLED=0 produces a static binary that runs on alpine
RUN CGO_ENABLED=0 GOOS=linux go build -trimpath -ldflags="-s -w" -o main .

# Runtime stage
FROM alpine:latest

RUN apk --no-cache add ca-certificates

WORKDIR /root/

# Copy binary from builder stage
COPY --from=builder /app/main .

ENV PORT={{.Port}}
EXPOSE {{.Port}}

CMD ["./main"]
`) + "\n"

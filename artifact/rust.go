package artifact

import "strings"

var rustTemplate = strings.TrimSpace(`
# Rust backend Dockerfile
FROM rust:1.70-alpine AS builder

RUN apk add --no-cache musl-dev

WORKDIR /app

# Copy Cargo files
COPY Cargo.toml Cargo.lock* ./

# Build dependencies against a placeholder main.rs so they cache separately
RUN mkdir src && echo "fn main() {}" > src/main.rs
RUN cargo build --release
RUN rm -rf src

# Copy source code
COPY src ./src

# Build the application
RUN touch src/main.rs && cargo build --release

# Runtime stage
FROM alpine:latest

RUN apk --no-cache add ca-certificates

WORKDIR /app

# Copy binary from builder stage
COPY --from=builder /app/target/release/{{.BinaryName}} .

ENV PORT={{.Port}}
EXPOSE {{.Port}}

CMD ["./{{.BinaryName}}"]
`) + "\n"

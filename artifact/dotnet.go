package artifact

import "strings"

var dotnetTemplate = strings.TrimSpace(`
# .NET backend Dockerfile
FROM mcr.microsoft.com/dotnet/sdk:7.0 AS builder

WORKDIR /app

# Copy csproj files
COPY *.csproj ./

# Restore dependencies
RUN dotnet restore

# Copy source code
COPY . .

# Build the application
RUN dotnet publish -c Release -o out

# Runtime stage
FROM mcr.microsoft.com/dotnet/aspnet:7.0

WORKDIR /app

# Copy built application from builder stage
COPY --from=builder /app/out .

ENV ASPNETCORE_URLS=http://+:{{.Port}}
EXPOSE {{.Port}}

CMD ["dotnet", "{{.BinaryName}}.dll"]
`) + "\n"

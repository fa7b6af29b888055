package artifact

import "strings"

var javaTemplate = strings.TrimSpace(`
# Java backend Dockerfile
FROM maven:3.8.4-openjdk-17 AS builder

WORKDIR /app

# Copy pom.xml
COPY pom.xml .

# Download dependencies
RUN mvn dependency:go-offline

# Copy source code
COPY src ./src

# Build the application
RUN mvn clean package -DskipTests

# Runtime stage
FROM openjdk:17-jre-slim

WORKDIR /app

# Copy built jar from builder stage
COPY --from=builder /app/target/*.jar app.jar

ENV PORT={{.Port}}
EXPOSE {{.Port}}

CMD ["java", "-Dserver.port={{.Port}}", "-jar", "app.jar"]
`) + "\n"

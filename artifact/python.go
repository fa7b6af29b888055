package artifact

import "strings"

var pythonTemplate = strings.TrimSpace(`
# Python backend Dockerfile
FROM python:3.11-slim

WORKDIR /app

ENV PYTHONDONTWRITEBYTECODE=1
ENV PYTHONUNBUFFERED=1

# Copy requirements file
COPY requirements.txt .

# Install dependencies
RUN pip install --no-cache-dir -r requirements.txt

# Copy source code
COPY . .

ENV PORT={{.Port}}
EXPOSE {{.Port}}

CMD ["python", "app.py"]
`) + "\n"

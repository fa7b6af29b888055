package artifact

import "strings"

var nodeTemplate = strings.TrimSpace(`
# Node.js backend Dockerfile
FROM node:18-alpine

WORKDIR /app

# Copy package files
COPY package*.json ./

# Install dependencies
RUN npm ci --only=production

# Copy source code
COPY . .

ENV NODE_ENV=production
ENV PORT={{.Port}}
EXPOSE {{.Port}}

CMD ["npm", "start"]
`) + "\n"

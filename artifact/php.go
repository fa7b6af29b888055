package artifact

import "strings"

var phpTemplate = strings.TrimSpace(`
# PHP backend Dockerfile
FROM php:8.2-apache

WORKDIR /var/www/html

# Install system dependencies
RUN apt-get update && apt-get install -y \
    git \
    curl \
    libpng-dev \
    libonig-dev \
    libxml2-dev \
    zip \
    unzip \
    && apt-get clean && rm -rf /var/lib/apt/lists/*

# Install PHP extensions
RUN docker-php-ext-install pdo_mysql mbstring exif pcntl bcmath gd

# Install composer
COPY --from=composer:2 /usr/bin/composer /usr/bin/composer

# Copy composer files
COPY composer.json composer.lock* ./

# Install dependencies
RUN composer install --no-dev --no-scripts --optimize-autoloader

# Copy source code
COPY . .

# Set permissions
RUN chown -R www-data:www-data /var/www/html

# Apache listens on the backend port instead of 80
ENV PORT={{.Port}}
RUN sed -ri "s/Listen 80$/Listen {{.Port}}/" /etc/apache2/ports.conf \
    && sed -ri "s/<VirtualHost \*:80>/<VirtualHost *:{{.Port}}>/" /etc/apache2/sites-available/000-default.conf
EXPOSE {{.Port}}

CMD ["apache2-foreground"]
`) + "\n"

// Package redis connects to the Redis instance backing the shared tenant
// cache, with startup retry and a healthcheck closure.
package redis

package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/binary"
    "encoding/json"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/sports-club/internal/config"
)

// captureWriter copies the response body while forwarding it to the client.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int64
    limit  int64
}

func (cw *captureWriter) WriteHeader(code int) { cw.status = code; cw.ResponseWriter.WriteHeader(code) }

func (cw *captureWriter) Write(b []byte) (int, error) {
    if cw.limit <= 0 {
        cw.buf.Write(b)
    } else if remain := cw.limit - cw.size; remain > 0 {
        if int64(len(b)) <= remain {
            cw.buf.Write(b)
        } else {
            cw.buf.Write(b[:remain])
        }
    }
    cw.size += int64(len(b))
    return cw.ResponseWriter.Write(b)
}

// cacheKeyFrom builds "<prefix>:<tag>:<sha1>" so PurgeCache can drop every
// entry of one tag with a single pattern.
func cacheKeyFrom(cfg config.CacheConfig, tag string, c echo.Context) string {
    r := c.Request()
    // The query is always part of the key: /my-courts?email= answers differ
    // per member.
    parts := []string{"route", r.URL.Path, "q", r.URL.RawQuery}
    if strings.EqualFold(cfg.KeyStrategy, "method_route") {
        parts = append([]string{"method", r.Method}, parts...)
    }
    sum := sha1.Sum([]byte(strings.Join(parts, ":")))
    return fmt.Sprintf("%s:%s:%x", cfg.Prefix, tag, sum[:])
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
    hdrJSON, err := json.Marshal(header)
    if err != nil {
        return nil, err
    }
    out := make([]byte, 8+len(hdrJSON)+len(body))
    binary.BigEndian.PutUint32(out[0:4], uint32(status))
    binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
    copy(out[8:], hdrJSON)
    copy(out[8+len(hdrJSON):], body)
    return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
    if len(bs) < 8 {
        return 0, nil, nil, false
    }
    status = int(binary.BigEndian.Uint32(bs[0:4]))
    hlen := int(binary.BigEndian.Uint32(bs[4:8]))
    if hlen < 0 || 8+hlen > len(bs) {
        return 0, nil, nil, false
    }
    header = make(http.Header)
    if hlen > 0 {
        if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
            return 0, nil, nil, false
        }
    }
    return status, header, bs[8+hlen:], true
}

// NewRedisCache serves cached 200 responses for the configured methods and
// stores misses under tag.  It is a pass-through without a Redis client.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client, tag string) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    maxBody := int64(cfg.MaxBodyBytes)

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
                return next(c)
            }
            ctx := c.Request().Context()
            key := cacheKeyFrom(cfg, tag, c)

            if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
                if status, hdr, body, ok := decodePayload(bs); ok {
                    for k, vals := range hdr {
                        if strings.EqualFold(k, echo.HeaderContentLength) {
                            continue
                        }
                        for _, v := range vals {
                            c.Response().Header().Add(k, v)
                        }
                    }
                    c.Response().Header().Set("X-Cache", "HIT")
                    c.Response().WriteHeader(status)
                    _, _ = c.Response().Write(body)
                    return nil
                }
            }

            cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")
            if err := next(c); err != nil {
                return err
            }
            // Truncated bodies are never stored.
            if cw.status != http.StatusOK || (maxBody > 0 && cw.size > maxBody) {
                return nil
            }
            hdr := c.Response().Header().Clone()
            hdr.Del("X-Cache")
            payload, err := encodePayload(cw.status, hdr, cw.buf.Bytes())
            if err != nil {
                return nil
            }
            if err := rdb.Set(context.Background(), key, payload, ttl).Err(); err != nil {
                log.Warn().Err(err).Str("key", key).Msg("cache: store failed")
            }
            return nil
        }
    }
}

// PurgeCache drops every cached entry under tags after a successful (2xx)
// response, so list endpoints never serve data older than the last write.
func PurgeCache(cfg config.CacheConfig, rdb *redis.Client, tags ...string) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            err := next(c)
            if err != nil {
                return err
            }
            if s := c.Response().Status; s < 200 || s >= 300 {
                return nil
            }
            ctx := context.Background()
            for _, tag := range tags {
                pattern := fmt.Sprintf("%s:%s:*", cfg.Prefix, tag)
                iter := rdb.Scan(ctx, 0, pattern, 100).Iterator()
                var keys []string
                for iter.Next(ctx) {
                    keys = append(keys, iter.Val())
                }
                if err := iter.Err(); err != nil {
                    log.Warn().Err(err).Str("tag", tag).Msg("cache: purge scan failed")
                    continue
                }
                if len(keys) > 0 {
                    if err := rdb.Del(ctx, keys...).Err(); err != nil {
                        log.Warn().Err(err).Str("tag", tag).Msg("cache: purge failed")
                    }
                }
            }
            return nil
        }
    }
}

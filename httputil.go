package papertrade

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// contains http utils to deal with the remote quote service

// quoteCache implements a simple disk cache for HTTP responses. Quotes go
// stale quickly, so the cache key includes the current minute: repeated
// commands within the same minute reuse the response, anything older expires.
type quoteCache struct {
	base http.RoundTripper
}

func (c *quoteCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02T15:04"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 500 {
		// server errors are not worth caching, client errors are: an unknown
		// symbol will still be unknown a minute from now.
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *quoteCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *quoteCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// cachedClient returns a client whose responses expire within the minute.
func cachedClient() *http.Client {
	client := new(http.Client)
	client.Transport = &quoteCache{http.DefaultTransport}
	return client
}

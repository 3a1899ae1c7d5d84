package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(nil) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip. Files under /static/ are sent as they are.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if hasToken(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !inflateBody(req) {
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
		}

		if strings.HasPrefix(req.URL.Path, "/static/") {
			next.ServeHTTP(w, req)
			return
		}
		w.Header().Add("Vary", "Accept-Encoding")
		if !hasToken(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		gz := gzipWriterPool.Get().(*gzip.Writer)
		gz.Reset(w)
		defer gzipWriterPool.Put(gz)

		rw := &gzipResponseWriter{ResponseWriter: w, gzipWriter: gz}
		next.ServeHTTP(rw, req)

		if rw.wroteBody {
			_ = gz.Close()
			return
		}
		// bodiless responses go out uncompressed
		rw.sendHeader(false)
		gz.Reset(io.Discard)
	})
}

// inflateBody swaps the request body for a pooled gzip reader.
func inflateBody(req *http.Request) bool {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipReaderPool.Put(zr)
		return false
	}

	req.Body = &wrappedReadCloser{
		Reader: zr,
		OnClose: func() {
			_ = zr.Close()
			gzipReaderPool.Put(zr)
		},
	}
	req.Header.Del("Content-Encoding")
	req.ContentLength = -1
	return true
}

// hasToken reports whether a comma separated header lists token, ignoring
// parameters such as q-values. "gzip;q=0" does not count.
func hasToken(header, token string) bool {
	for part := range strings.SplitSeq(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(name), token) {
			continue
		}
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok && strings.Trim(q, "0.") == "" {
			return false
		}
		return true
	}
	return false
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter holds the status back until the first body byte, so
// that only responses with a body are marked as gzip encoded.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	status     int
	headerSent bool
	wroteBody  bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *gzipResponseWriter) sendHeader(compressed bool) {
	if w.headerSent {
		return
	}
	w.headerSent = true
	if compressed {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(w.status)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	w.sendHeader(true)
	w.wroteBody = true
	return w.gzipWriter.Write(data)
}

// FlushError pushes buffered compressed bytes to the client. Streaming
// handlers reach it through [http.ResponseController].
func (w *gzipResponseWriter) FlushError() error {
	if err := w.gzipWriter.Flush(); err != nil {
		return err
	}
	return http.NewResponseController(w.ResponseWriter).Flush()
}

func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

package compress

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"shortlink/internal/http/httputils"
)

// MiddlewareCompressing возвращает middleware для gzip сжатия/распаковки
func MiddlewareCompressing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := decompressRequest(r); err != nil {
				http.Error(w, "invalid gzip data", http.StatusBadRequest)
				return
			}

			if acceptsGzip(r) && isCompressible(r) {
				compressResponse(w, r, next)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// decompressRequest распаковывает входящий gzip-контент
func decompressRequest(r *http.Request) error {
	if !strings.Contains(r.Header.Get(httputils.HeaderContentEncoding), httputils.EncodingGzip) {
		return nil
	}

	gz, err := gzip.NewReader(r.Body)
	if err != nil {
		return err
	}
	r.Body = gz
	return nil
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get(httputils.HeaderAcceptEncoding), httputils.EncodingGzip)
}

// isCompressible проверяет нужно ли сжимать ответ
func isCompressible(r *http.Request) bool {
	contentType := r.Header.Get(httputils.HeaderContentType)
	return contentType == "" ||
		strings.HasPrefix(contentType, httputils.MIMEApplicationJSON) ||
		strings.HasPrefix(contentType, httputils.MIMETextHTML) ||
		strings.HasPrefix(contentType, httputils.MIMETextPlain)
}

func compressResponse(w http.ResponseWriter, r *http.Request, next http.Handler) {
	gz := gzip.NewWriter(w)
	defer gz.Close()

	w.Header().Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
	w.Header().Del(httputils.HeaderContentLength)

	next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, Writer: gz}, r)
}

// gzipResponseWriter минимальная обёртка для сжатия ответа
type gzipResponseWriter struct {
	http.ResponseWriter
	io.Writer
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

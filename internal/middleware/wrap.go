package middleware

import "net/http"

// ResponseRecorder wraps ResponseWriter and captures the status code.
type ResponseRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool

	beforeWrite func(http.ResponseWriter)
}

func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	return &ResponseRecorder{ResponseWriter: w, status: http.StatusOK}
}

// SetBeforeWrite registers a hook invoked once before the first write,
// letting middleware set headers (e.g. cookies) just in time.
func (rw *ResponseRecorder) SetBeforeWrite(fn func(http.ResponseWriter)) {
	rw.beforeWrite = fn
}

func (rw *ResponseRecorder) WriteHeader(statusCode int) {
	if !rw.wrote && rw.beforeWrite != nil {
		rw.beforeWrite(rw.ResponseWriter)
	}
	rw.wrote = true
	rw.status = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *ResponseRecorder) Write(b []byte) (int, error) {
	if !rw.wrote {
		if rw.beforeWrite != nil {
			rw.beforeWrite(rw.ResponseWriter)
		}
		rw.wrote = true
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *ResponseRecorder) Status() int { return rw.status }

// Wrote reports whether any response bytes or headers were written.
func (rw *ResponseRecorder) Wrote() bool { return rw.wrote }

package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest прогоняет запрос через роутер httptest'ом и возвращает ответ.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, args.Body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

// WithHeader добавляет заголовок к запросу.
func WithHeader(key, value string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers[key] = value
	}
}

// WithHeaders добавляет заголовки к запросу.
func WithHeaders(headers map[string]string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		for k, v := range headers {
			o.headers[k] = v
		}
	}
}

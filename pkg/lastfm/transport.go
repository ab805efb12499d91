package lastfm

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	apiStatusOK     = "ok"
	apiStatusFailed = "failed"
)

// callOptions control how a single API call is assembled.
type callOptions struct {
	session bool // inject the client's session key as "sk"
	sign    bool // sign even without a session key
}

// call makes exactly one HTTP round trip to the Last.fm API.
//
// It assembles the full parameter set (api_key, method, optional sk,
// optional api_sig), posts it as a form body, parses the XML response
// and checks the status envelope. Session-bearing calls are always
// signed. There is no retry and no caching here: a failed envelope
// surfaces as *Error, everything below it as *TransportError, and the
// caller owns whatever retry policy it wants. Timeouts belong to the
// configured http.Client and the caller's context.
func (c *Client) call(ctx context.Context, method string, params Params, opts callOptions) (*Document, error) {
	reqParams := params.Clone()
	reqParams["method"] = method
	reqParams["api_key"] = c.apiKey

	if opts.session {
		if c.sessionKey == "" {
			return nil, ErrNoSessionKey
		}
		reqParams["sk"] = c.sessionKey
		opts.sign = true
	}

	if opts.sign {
		reqParams["api_sig"] = signParams(reqParams, c.apiSecret)
	}

	formData := url.Values{}
	for k, v := range reqParams {
		formData.Add(k, v)
	}

	c.logDebugf("lastfm: calling %s", method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return nil, &TransportError{Op: method, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "lfmkit/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method, Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, &TransportError{Op: method, Err: err}
	}

	// Last.fm reports API errors with non-200 codes as well as in the
	// body envelope; prefer the envelope when the body parses, since it
	// carries the service's own code and message.
	doc, parseErr := parseDocument(body)
	if parseErr != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &TransportError{Op: method, Err: &httpStatusError{Code: resp.StatusCode, Status: resp.Status}}
		}
		return nil, &TransportError{Op: method, Err: parseErr}
	}

	if status := doc.Root().Attr("status"); status != apiStatusOK {
		if status == apiStatusFailed {
			return nil, serviceError(doc)
		}
		return nil, &TransportError{Op: method, Err: &envelopeError{Status: status}}
	}

	c.logDebugf("lastfm: %s succeeded", method)
	return doc, nil
}

// serviceError extracts the <error code="N">message</error> payload of
// a failed envelope.
func serviceError(doc *Document) error {
	el, err := doc.ExtractElement("error", 0)
	if err != nil {
		return &TransportError{Op: "error envelope", Err: err}
	}
	code, err := strconv.Atoi(el.Attr("code"))
	if err != nil {
		return &TransportError{Op: "error envelope", Err: err}
	}
	return &Error{Code: code, Message: el.Text}
}

// httpStatusError reports a non-200 response with an unparseable body.
type httpStatusError struct {
	Code   int
	Status string
}

func (e *httpStatusError) Error() string {
	return "unexpected status code: " + e.Status
}

// envelopeError reports a parseable body whose root status attribute
// is neither "ok" nor "failed".
type envelopeError struct {
	Status string
}

func (e *envelopeError) Error() string {
	return "unexpected response status attribute: " + strconv.Quote(e.Status)
}

package esteria

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyField is returned by NewRequest when a required field is empty.
var ErrEmptyField = errors.New("EMPTY_REQUIRED_FIELD")

// Flags are the gateway's optional send switches. Any combination is valid;
// each set flag contributes exactly one query parameter on the wire.
type Flags uint8

const (
	FlagDebug Flags = 1 << iota
	FlagNoLog
	FlagFlash
	FlagTest
	FlagNoBL
	FlagConvert
)

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// Encoding selects the gateway payload mode. Exactly one encoding is active
// per request.
type Encoding int

const (
	EncodingDefault Encoding = iota
	EncodingEightBit
	EncodingUDH
)

const timeLayout = "2006-01-02T15:04:05"

// Request describes a single message to send. Build it with NewRequest, set
// optional attributes with the With methods, and treat it as read-only once
// it has been passed to a Client.
type Request struct {
	apiKey   string
	sender   string
	number   string
	text     string
	time     *time.Time
	dlrURL   string
	expired  *int
	flags    Flags
	userKey  string
	encoding Encoding
}

// NewRequest builds a request from the four mandatory fields. Every optional
// attribute starts at its default: no schedule, no DLR URL, no expiry, no
// flags, no user key, EightBit encoding.
func NewRequest(apiKey, sender, number, text string) (*Request, error) {
	required := []struct {
		name  string
		value string
	}{
		{"api_key", apiKey},
		{"sender", sender},
		{"number", number},
		{"text", text},
	}

	for _, field := range required {
		if field.value == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyField, field.name)
		}
	}

	return &Request{
		apiKey:   apiKey,
		sender:   sender,
		number:   number,
		text:     text,
		encoding: EncodingEightBit,
	}, nil
}

// WithTime schedules the message. The gateway expects UTC.
func (r *Request) WithTime(t time.Time) *Request {
	utc := t.UTC()
	r.time = &utc
	return r
}

// WithDLRURL sets the delivery report callback URL.
func (r *Request) WithDLRURL(dlrURL string) *Request {
	r.dlrURL = dlrURL
	return r
}

// WithExpiry sets the message validity period in minutes.
func (r *Request) WithExpiry(minutes int) *Request {
	r.expired = &minutes
	return r
}

func (r *Request) WithFlags(flags Flags) *Request {
	r.flags = flags
	return r
}

// WithUserKey attaches a caller-supplied tracking token.
func (r *Request) WithUserKey(userKey string) *Request {
	r.userKey = userKey
	return r
}

func (r *Request) WithEncoding(encoding Encoding) *Request {
	r.encoding = encoding
	return r
}

// Number returns the destination number as supplied by the caller.
func (r *Request) Number() string {
	return r.number
}

var flagParams = []struct {
	flag  Flags
	name  string
	value string
}{
	{FlagDebug, "flag-debug", "1"},
	{FlagNoLog, "flag-nolog", "3"},
	{FlagFlash, "flag-flash", "1"},
	{FlagTest, "flag-test", "1"},
	{FlagNoBL, "flag-nobl", "1"},
	{FlagConvert, "flag-convert", "1"},
}

// Params returns the query parameter set the gateway expects for this
// request. A leading "+" on the destination number is stripped; the schedule
// is formatted as YYYY-MM-DDTHH:MM:SS in UTC with no offset.
func (r *Request) Params() url.Values {
	params := url.Values{}

	params.Set("api-key", r.apiKey)
	params.Set("sender", r.sender)
	params.Set("number", strings.TrimPrefix(r.number, "+"))
	params.Set("text", r.text)

	if r.time != nil {
		params.Set("time", r.time.Format(timeLayout))
	}

	if r.dlrURL != "" {
		params.Set("dlr-url", r.dlrURL)
	}

	if r.expired != nil {
		params.Set("expired", strconv.Itoa(*r.expired))
	}

	for _, fp := range flagParams {
		if r.flags.Has(fp.flag) {
			params.Set(fp.name, fp.value)
		}
	}

	if r.userKey != "" {
		params.Set("user-key", r.userKey)
	}

	switch r.encoding {
	case EncodingUDH:
		params.Set("udh", "1")
		params.Set("coding", "1")
	case EncodingEightBit:
		params.Set("coding", "1")
	case EncodingDefault:
	}

	return params
}

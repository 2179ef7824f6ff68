package esteria

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/esteria/esteria-go/pkg/httpclient"
)

const sendEndpoint = "/send"

// Client sends messages through the Esteria HTTP gateway. A Client performs
// exactly one round trip per Send call and is safe for concurrent use.
type Client interface {
	Send(ctx context.Context, request *Request) (int, error)
}

type SMSClient struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewClient(cfg Config, client httpclient.HTTPClient) Client {
	return &SMSClient{cfg: cfg, client: client}
}

// Send performs one GET against {base_url}/send. The gateway folds success
// and failure into a single integer body: values above 100 are message ids,
// anything at or below 100 is a failure code.
func (s *SMSClient) Send(ctx context.Context, request *Request) (int, error) {
	url := s.cfg.BaseURL + sendEndpoint + "?" + request.Params().Encode()

	resp, err := s.client.Get(ctx, url, nil)
	if err != nil {
		return 0, &RequestError{Err: err}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &RequestError{Err: err}
	}

	code, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil {
		return 0, &SendError{Number: request.Number(), Message: unknownError}
	}

	if code > 100 {
		return code, nil
	}

	return 0, &SendError{Number: request.Number(), Message: CodeMessage(code)}
}

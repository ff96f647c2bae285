package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"market_backend/internal/feature/marketdata/domain"
)

// maxErrorBody は非2xxレスポンスから理由として読み取る最大バイト数です。
const maxErrorBody = 256

// Doer は *http.Client が満たすリクエスト実行インターフェースです。
// テストではスタブを差し込めます。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// JSONClient はGETリクエストを送りJSONボディをDTOへデコードします。
// 失敗はすべて domain.RequestError に変換されます。
type JSONClient struct {
	doer      Doer
	userAgent string
}

// NewJSONClient は doer を使う JSONClient を生成します。doer が nil の場合は http.DefaultClient を使います。
func NewJSONClient(doer Doer, userAgent string) *JSONClient {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &JSONClient{doer: doer, userAgent: userAgent}
}

// GetJSON は rawURL にGETし、2xxのボディを out にデコードします。
//
// エラー対応:
//   - 接続失敗など: CommunicationError
//   - 401: AuthenticationError
//   - 402, 403: AuthorizationError
//   - 429: RequestThrottled（Retry-After を理由に含める）
//   - 400, 404: BadRequestError
//   - その他の非2xx: CommunicationError
//   - デコード失敗: BadResponseError
//
// URLのクエリにはトークンが含まれるため、エラーにはホストとパスのみを残します。
func (c *JSONClient) GetJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.NewBadRequestError(fmt.Sprintf("invalid request url: %v", stripURL(err)))
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	target := req.URL.Host + req.URL.Path

	res, err := c.doer.Do(req)
	if err != nil {
		return domain.NewCommunicationError("GET "+target, stripURL(err))
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return statusError(res, target)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return domain.NewBadResponseError("decode "+target, err)
	}
	return nil
}

// StatusError maps a non-2xx response to the request error taxonomy.
// Exported so providers that carry the HTTP status inside a 200 body can reuse it.
func StatusError(status int, reason, retryAfter string) *domain.RequestError {
	switch status {
	case http.StatusUnauthorized:
		return domain.NewAuthenticationError(reason)
	case http.StatusPaymentRequired, http.StatusForbidden:
		return domain.NewAuthorizationError(reason)
	case http.StatusTooManyRequests:
		if retryAfter != "" {
			reason = fmt.Sprintf("%s (retry after %s)", reason, retryAfter)
		}
		return domain.NewThrottledError(reason)
	case http.StatusBadRequest, http.StatusNotFound:
		return domain.NewBadRequestError(reason)
	default:
		return domain.NewCommunicationError(reason, nil)
	}
}

func statusError(res *http.Response, target string) error {
	reason := fmt.Sprintf("HTTP %d from %s", res.StatusCode, target)
	b, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if msg := strings.TrimSpace(string(b)); msg != "" {
		reason += ": " + msg
	}
	return StatusError(res.StatusCode, reason, res.Header.Get("Retry-After"))
}

// stripURL drops the *url.Error wrapper, whose message repeats the full URL.
func stripURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

package apiclient

import (
	"Agora/internal/api/config"
	"Agora/internal/api/dto"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/logger"
	"Agora/internal/pkg/security"
	"Agora/internal/pkg/store"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// Client 帖子与资料 REST API 客户端
type Client struct {
	http    *resty.Client
	store   store.Store
	limiter *rate.Limiter
	baseURL string
}

// New 凭据不缓存在客户端中，每次请求都从 store 读取
func New(cfg config.ServerConfig, st store.Store) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	}

	c := &Client{
		http:    httpClient,
		store:   st,
		baseURL: baseURL,
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
		httpClient.OnBeforeRequest(c.throttle)
	}
	httpClient.OnBeforeRequest(c.attachToken)
	logger.SetupResty(httpClient)
	return c
}

// BaseURL 当前部署的 API 根地址
func (s *Client) BaseURL() string {
	return s.baseURL
}

// ResolveURL 将服务端返回的相对路径补全为绝对地址
func (s *Client) ResolveURL(u string) string {
	if strings.HasPrefix(u, "/") {
		return s.baseURL + u
	}
	return u
}

func (s *Client) attachToken(_ *resty.Client, req *resty.Request) error {
	ctx := req.Context()
	token, ok, err := s.store.Get(ctx, consts.TokenKey)
	if err != nil {
		log.WarnContext(ctx, "failed to read credential, sending request without it", "err", err)
		return nil
	}
	if !ok || token == "" {
		return nil
	}
	if claims, err := security.InspectToken(token); err == nil && claims.Expired(time.Now()) {
		log.WarnContext(ctx, "bearer credential looks expired", "expires_at", claims.ExpiresAt.Time)
	}
	req.SetAuthToken(token)
	return nil
}

// throttle 排队等待令牌，请求的 ctx 取消时立即返回
func (s *Client) throttle(_ *resty.Client, req *resty.Request) error {
	return s.limiter.Wait(req.Context())
}

// execute 统一处理传输错误、响应体解析错误与非 2xx 响应
func (s *Client) execute(ctx context.Context, method, url, fallback string, result any, build func(r *resty.Request)) error {
	var errBody dto.ErrorResp
	req := s.http.R().
		SetContext(ctx).
		SetError(&errBody)
	if result != nil {
		req.SetResult(result)
	}
	if build != nil {
		build(req)
	}

	op := method + " " + url
	resp, err := req.Execute(method, url)
	if err != nil {
		if resp != nil && resp.RawResponse != nil {
			return &DecodeError{Op: op, StatusCode: resp.StatusCode(), Err: err}
		}
		return &NetworkError{Op: op, Err: err}
	}
	if !resp.IsSuccess() {
		msg := errBody.Error
		if msg == "" {
			msg = fallback
		}
		return &RequestError{StatusCode: resp.StatusCode(), Message: msg}
	}
	// resty 只解析 JSON 类型的响应体，其余类型在这里按 JSON 解析一次
	if result != nil && !resty.IsJSONType(resp.Header().Get("Content-Type")) {
		if err = json.Unmarshal(resp.Body(), result); err != nil {
			return &DecodeError{Op: op, StatusCode: resp.StatusCode(), Err: err}
		}
	}
	return nil
}

package apiclient

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// CreatePost 创建帖子，媒体字段为空时不发送
func (s *Client) CreatePost(ctx context.Context, content, mediaURL, mediaType string) (*model.Post, error) {
	body := dto.CreatePostDTO{Content: content}
	if mediaURL != "" {
		body.MediaURL = &mediaURL
		body.MediaType = &mediaType
	}

	var resp dto.CreatePostResp
	err := s.execute(ctx, http.MethodPost, "/api/posts", "Failed to create post", &resp, func(r *resty.Request) {
		r.SetBody(&body)
	})
	if err != nil {
		return nil, err
	}
	return toPost(&resp.Post)
}

// ListPosts 分页获取帖子
func (s *Client) ListPosts(ctx context.Context, page, perPage int) (*model.PostPage, error) {
	var resp dto.PostListResp
	err := s.execute(ctx, http.MethodGet, "/api/posts", "Failed to fetch posts", &resp, func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"page":     strconv.Itoa(page),
			"per_page": strconv.Itoa(perPage),
		})
	})
	if err != nil {
		return nil, err
	}
	return toPostPage(&resp)
}

// ToggleLike 切换点赞，返回服务端的最新状态
func (s *Client) ToggleLike(ctx context.Context, postID uint64) (*model.LikeState, error) {
	var resp dto.LikeResp
	path := "/api/posts/" + strconv.FormatUint(postID, 10) + "/like"
	if err := s.execute(ctx, http.MethodPost, path, "Failed to like post", &resp, nil); err != nil {
		return nil, err
	}
	return &model.LikeState{LikesCount: resp.LikesCount, IsLiked: resp.IsLiked}, nil
}

// UploadMedia 以 multipart 字段 media 上传单个文件
func (s *Client) UploadMedia(ctx context.Context, file *model.MediaFile) (*model.UploadResult, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var resp dto.MediaUploadResp
	err = s.execute(ctx, http.MethodPost, "/api/posts/media", "Failed to upload media", &resp, func(r *resty.Request) {
		r.SetMultipartField("media", file.Name, file.ContentType, rc)
	})
	if err != nil {
		return nil, err
	}
	return &model.UploadResult{MediaURL: resp.MediaURL, MediaType: resp.MediaType}, nil
}

// MediaURL 已上传文件的访问地址
func (s *Client) MediaURL(filename string) string {
	return s.baseURL + "/api/posts/uploads/" + url.PathEscape(filename)
}

package apiclient

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"context"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// GetProfile 当前登录用户的资料
func (s *Client) GetProfile(ctx context.Context) (*dto.ProfileDTO, error) {
	var resp dto.ProfileResp
	if err := s.execute(ctx, http.MethodGet, "/api/profile", "Failed to fetch profile", &resp, nil); err != nil {
		return nil, err
	}
	return &resp.Profile, nil
}

// GetUserProfile 指定用户的资料
func (s *Client) GetUserProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error) {
	var resp dto.ProfileResp
	path := "/api/profile/" + strconv.FormatUint(userID, 10)
	if err := s.execute(ctx, http.MethodGet, path, "Failed to fetch profile", &resp, nil); err != nil {
		return nil, err
	}
	return &resp.Profile, nil
}

// UpdateProfile 只提交 patch 中的非空字段
func (s *Client) UpdateProfile(ctx context.Context, patch *dto.ProfileUpdateDTO) (string, error) {
	var resp dto.MessageResp
	err := s.execute(ctx, http.MethodPut, "/api/profile", "Failed to update profile", &resp, func(r *resty.Request) {
		r.SetBody(patch)
	})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UploadProfileImage 以 multipart 字段 image 上传头像
func (s *Client) UploadProfileImage(ctx context.Context, file *model.MediaFile) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var resp dto.ProfileImageResp
	err = s.execute(ctx, http.MethodPost, "/api/profile/image", "Failed to upload image", &resp, func(r *resty.Request) {
		r.SetMultipartField("image", file.Name, file.ContentType, rc)
	})
	if err != nil {
		return "", err
	}
	return resp.ImageURL, nil
}

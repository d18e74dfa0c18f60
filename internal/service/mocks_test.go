package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadMedia(ctx context.Context, file *model.MediaFile) (*model.UploadResult, error) {
	args := m.Called(ctx, file)
	res, _ := args.Get(0).(*model.UploadResult)
	return res, args.Error(1)
}

type MockPostAPI struct {
	mock.Mock
}

func (m *MockPostAPI) CreatePost(ctx context.Context, content, mediaURL, mediaType string) (*model.Post, error) {
	args := m.Called(ctx, content, mediaURL, mediaType)
	post, _ := args.Get(0).(*model.Post)
	return post, args.Error(1)
}

func (m *MockPostAPI) ListPosts(ctx context.Context, page, perPage int) (*model.PostPage, error) {
	args := m.Called(ctx, page, perPage)
	res, _ := args.Get(0).(*model.PostPage)
	return res, args.Error(1)
}

func (m *MockPostAPI) ToggleLike(ctx context.Context, postID uint64) (*model.LikeState, error) {
	args := m.Called(ctx, postID)
	res, _ := args.Get(0).(*model.LikeState)
	return res, args.Error(1)
}

type MockProfileAPI struct {
	mock.Mock
}

func (m *MockProfileAPI) GetProfile(ctx context.Context) (*dto.ProfileDTO, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*dto.ProfileDTO)
	return res, args.Error(1)
}

func (m *MockProfileAPI) GetUserProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*dto.ProfileDTO)
	return res, args.Error(1)
}

func (m *MockProfileAPI) UpdateProfile(ctx context.Context, patch *dto.ProfileUpdateDTO) (string, error) {
	args := m.Called(ctx, patch)
	return args.String(0), args.Error(1)
}

func (m *MockProfileAPI) UploadProfileImage(ctx context.Context, file *model.MediaFile) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func mediaFile(name, contentType string, size int64) *model.MediaFile {
	return &model.MediaFile{Name: name, ContentType: contentType, Size: size, Data: []byte(name)}
}

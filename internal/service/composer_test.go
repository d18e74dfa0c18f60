package service

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/preview"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type composerFixture struct {
	composer *Composer
	uploader *MockUploader
	api      *MockPostAPI
	previews *preview.Registry
}

func newComposerFixture(uploader MediaUploader) *composerFixture {
	reg := preview.NewRegistry("", 0)
	mocked := new(MockUploader)
	if uploader == nil {
		uploader = mocked
	}
	api := new(MockPostAPI)
	return &composerFixture{
		composer: NewComposer(NewMediaService(reg, 0), NewUploadService(uploader, 0), api),
		uploader: mocked,
		api:      api,
		previews: reg,
	}
}

func TestComposer_SubmitWithImage(t *testing.T) {
	ctx := context.Background()
	f := newComposerFixture(nil)
	img := mediaFile("cat.png", "image/png", 10)

	require.NoError(t, f.composer.SetContent("  hello  "))
	rejected, err := f.composer.AddFiles(ctx, []*model.MediaFile{img})
	require.NoError(t, err)
	require.Empty(t, rejected)

	f.uploader.On("UploadMedia", mock.Anything, img).Return(&model.UploadResult{MediaURL: "u1", MediaType: "image"}, nil)
	f.api.On("CreatePost", mock.Anything, "hello", "u1", "image").Return(&model.Post{ID: 1, Content: "hello"}, nil)

	post, err := f.composer.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), post.ID)
	f.api.AssertExpectations(t)

	assert.Equal(t, StateSuccess, f.composer.State())
	assert.Equal(t, consts.PostCreatedNotice, f.composer.Notice())
	draft := f.composer.Draft()
	assert.Equal(t, "", draft.Content)
	assert.Empty(t, draft.Media)
	assert.Equal(t, 0, f.previews.Live())
	assert.Empty(t, f.composer.Progress())
}

func TestComposer_SubmitTextOnly(t *testing.T) {
	f := newComposerFixture(nil)
	require.NoError(t, f.composer.SetContent("just text"))
	f.api.On("CreatePost", mock.Anything, "just text", "", "").Return(&model.Post{ID: 2}, nil)

	_, err := f.composer.Submit(context.Background())
	require.NoError(t, err)
	f.uploader.AssertNotCalled(t, "UploadMedia", mock.Anything, mock.Anything)
}

func TestComposer_OnlyFirstResultAttached(t *testing.T) {
	ctx := context.Background()
	f := newComposerFixture(nil)
	a, b := mediaFile("a.png", "image/png", 1), mediaFile("b.mp4", "video/mp4", 1)
	require.NoError(t, f.composer.SetContent("two files"))
	_, err := f.composer.AddFiles(ctx, []*model.MediaFile{a, b})
	require.NoError(t, err)

	f.uploader.On("UploadMedia", mock.Anything, a).Return(&model.UploadResult{MediaURL: "ua", MediaType: "image"}, nil)
	f.uploader.On("UploadMedia", mock.Anything, b).Return(&model.UploadResult{MediaURL: "ub", MediaType: "video"}, nil)
	f.api.On("CreatePost", mock.Anything, "two files", "ua", "image").Return(&model.Post{ID: 3}, nil)

	_, err = f.composer.Submit(ctx)
	require.NoError(t, err)
	f.api.AssertNumberOfCalls(t, "CreatePost", 1)
}

func TestComposer_EmptyContentMakesNoCalls(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t"} {
		f := newComposerFixture(nil)
		require.NoError(t, f.composer.SetContent(content))
		_, err := f.composer.AddFiles(context.Background(), []*model.MediaFile{mediaFile("a.png", "image/png", 1)})
		require.NoError(t, err)

		_, err = f.composer.Submit(context.Background())

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.ErrorIs(t, err, ErrEmptyContent)
		assert.Equal(t, StateError, f.composer.State())
		f.uploader.AssertNotCalled(t, "UploadMedia", mock.Anything, mock.Anything)
		f.api.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestComposer_TooLongMakesNoCalls(t *testing.T) {
	f := newComposerFixture(nil)
	require.NoError(t, f.composer.SetContent(strings.Repeat("a", 1001)))
	assert.True(t, f.composer.IsOverLimit())
	assert.False(t, f.composer.CanSubmit())

	_, err := f.composer.Submit(context.Background())

	assert.ErrorIs(t, err, ErrContentTooLong)
	assert.Equal(t, StateError, f.composer.State())
	f.uploader.AssertNotCalled(t, "UploadMedia", mock.Anything, mock.Anything)
	f.api.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComposer_LimitCountsCharacters(t *testing.T) {
	f := newComposerFixture(nil)
	content := strings.Repeat("é", 1000)
	require.NoError(t, f.composer.SetContent(content))
	assert.Equal(t, 1000, f.composer.CharCount())
	assert.False(t, f.composer.IsOverLimit())

	f.api.On("CreatePost", mock.Anything, content, "", "").Return(&model.Post{ID: 4}, nil)
	_, err := f.composer.Submit(context.Background())
	assert.NoError(t, err)
}

func TestComposer_UploadFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	f := newComposerFixture(nil)
	img := mediaFile("cat.png", "image/png", 1)
	require.NoError(t, f.composer.SetContent("hello"))
	_, err := f.composer.AddFiles(ctx, []*model.MediaFile{img})
	require.NoError(t, err)
	f.uploader.On("UploadMedia", mock.Anything, img).Return(nil, errors.New("413"))

	_, err = f.composer.Submit(ctx)

	assert.EqualError(t, err, "failed to upload cat.png: 413")
	assert.Equal(t, StateError, f.composer.State())
	assert.Equal(t, err, f.composer.Err())
	f.api.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Len(t, f.composer.Draft().Media, 1)
	assert.Equal(t, 1, f.previews.Live())
}

func TestComposer_CreateFailureKeepsDraftEditable(t *testing.T) {
	ctx := context.Background()
	f := newComposerFixture(nil)
	img := mediaFile("cat.png", "image/png", 1)
	require.NoError(t, f.composer.SetContent("hello"))
	_, err := f.composer.AddFiles(ctx, []*model.MediaFile{img})
	require.NoError(t, err)
	f.uploader.On("UploadMedia", mock.Anything, img).Return(&model.UploadResult{MediaURL: "u1", MediaType: "image"}, nil)
	f.api.On("CreatePost", mock.Anything, "hello", "u1", "image").Return(nil, errors.New("Failed to create post")).Once()

	_, err = f.composer.Submit(ctx)
	require.Error(t, err)
	assert.Equal(t, StateError, f.composer.State())

	draft := f.composer.Draft()
	assert.Equal(t, "hello", draft.Content)
	require.Len(t, draft.Media, 1)
	assert.Equal(t, img, draft.Media[0].File)

	require.NoError(t, f.composer.SetContent("hello again"))
	assert.Equal(t, StateDraft, f.composer.State())
	assert.Nil(t, f.composer.Err())
	require.NoError(t, f.composer.RemoveMedia(ctx, 0))
	assert.Empty(t, f.composer.Draft().Media)
	assert.Equal(t, 0, f.previews.Live())
}

type blockingUploader struct {
	started chan struct{}
	release chan struct{}
}

func (u *blockingUploader) UploadMedia(_ context.Context, file *model.MediaFile) (*model.UploadResult, error) {
	close(u.started)
	<-u.release
	return &model.UploadResult{MediaURL: file.Name, MediaType: "image"}, nil
}

func TestComposer_BusyWhileSubmitting(t *testing.T) {
	ctx := context.Background()
	up := &blockingUploader{started: make(chan struct{}), release: make(chan struct{})}
	f := newComposerFixture(up)
	require.NoError(t, f.composer.SetContent("hello"))
	_, err := f.composer.AddFiles(ctx, []*model.MediaFile{mediaFile("a.png", "image/png", 1)})
	require.NoError(t, err)
	f.api.On("CreatePost", mock.Anything, "hello", "a.png", "image").Return(&model.Post{ID: 9}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := f.composer.Submit(ctx)
		done <- err
	}()

	select {
	case <-up.started:
	case <-time.After(time.Second):
		t.Fatal("upload never started")
	}

	assert.Equal(t, StateUploading, f.composer.State())
	assert.Equal(t, map[int]int{0: 0}, f.composer.Progress())
	assert.False(t, f.composer.CanSubmit())
	assert.ErrorIs(t, f.composer.SetContent("changed"), ErrComposerBusy)
	assert.ErrorIs(t, f.composer.RemoveMedia(ctx, 0), ErrComposerBusy)
	assert.ErrorIs(t, f.composer.Clear(ctx), ErrComposerBusy)
	_, err = f.composer.AddFiles(ctx, nil)
	assert.ErrorIs(t, err, ErrComposerBusy)
	_, err = f.composer.Submit(ctx)
	assert.ErrorIs(t, err, ErrComposerBusy)

	close(up.release)
	require.NoError(t, <-done)
	assert.Equal(t, StateSuccess, f.composer.State())
	f.api.AssertNumberOfCalls(t, "CreatePost", 1)
}

func TestComposer_ClearReleasesPreviews(t *testing.T) {
	ctx := context.Background()
	f := newComposerFixture(nil)
	require.NoError(t, f.composer.SetContent("x"))
	rejected, err := f.composer.AddFiles(ctx, []*model.MediaFile{
		mediaFile("a.png", "image/png", 1),
		mediaFile("b.exe", "application/octet-stream", 1),
	})
	require.NoError(t, err)
	assert.Len(t, rejected, 1)
	assert.Equal(t, 1, f.previews.Live())

	require.NoError(t, f.composer.Clear(ctx))
	assert.Equal(t, 0, f.previews.Live())
	assert.Equal(t, model.DraftPost{}, f.composer.Draft())
}

func TestComposer_Preview(t *testing.T) {
	f := newComposerFixture(nil)
	require.NoError(t, f.composer.SetContent(" **hi** *there* "))
	assert.Equal(t, "<strong>hi</strong> <em>there</em>", f.composer.Preview())
	assert.True(t, f.composer.CanSubmit())
}

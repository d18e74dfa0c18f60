package service

import (
	"Agora/internal/model"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stagedFiles(names ...string) []*model.StagedMedia {
	out := make([]*model.StagedMedia, 0, len(names))
	for _, n := range names {
		out = append(out, &model.StagedMedia{File: mediaFile(n, "image/png", 1), Kind: model.MediaImage})
	}
	return out
}

type progressRecorder struct {
	mu     sync.Mutex
	events map[int][]int
}

func (r *progressRecorder) sink(index, percent int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.events == nil {
		r.events = make(map[int][]int)
	}
	r.events[index] = append(r.events[index], percent)
}

func TestUploadAll_Empty(t *testing.T) {
	uploader := new(MockUploader)
	svc := NewUploadService(uploader, 0)

	res, err := svc.UploadAll(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
	uploader.AssertNotCalled(t, "UploadMedia", mock.Anything, mock.Anything)
}

func TestUploadAll_OrderAndProgress(t *testing.T) {
	staged := stagedFiles("a.png", "b.png", "c.png")
	uploader := new(MockUploader)
	for _, m := range staged {
		uploader.On("UploadMedia", mock.Anything, m.File).
			Return(&model.UploadResult{MediaURL: "/u/" + m.File.Name, MediaType: "image"}, nil)
	}
	rec := &progressRecorder{}

	res, err := NewUploadService(uploader, 0).UploadAll(context.Background(), staged, rec.sink)
	require.NoError(t, err)

	require.Len(t, res, 3)
	for i, m := range staged {
		assert.Equal(t, "/u/"+m.File.Name, res[i].MediaURL)
		assert.Equal(t, []int{0, 100}, rec.events[i])
	}
	uploader.AssertNumberOfCalls(t, "UploadMedia", 3)
}

func TestUploadAll_FailFastNamesFile(t *testing.T) {
	staged := stagedFiles("a.png", "b.png", "c.png")
	boom := errors.New("boom")
	uploader := new(MockUploader)
	uploader.On("UploadMedia", mock.Anything, staged[0].File).Return(&model.UploadResult{MediaURL: "u1"}, nil)
	uploader.On("UploadMedia", mock.Anything, staged[1].File).Return(nil, boom)
	uploader.On("UploadMedia", mock.Anything, staged[2].File).Return(&model.UploadResult{MediaURL: "u3"}, nil)
	rec := &progressRecorder{}

	res, err := NewUploadService(uploader, 0).UploadAll(context.Background(), staged, rec.sink)

	assert.Nil(t, res)
	require.Error(t, err)
	assert.Equal(t, "failed to upload b.png: boom", err.Error())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{0}, rec.events[1])
}

type countingUploader struct {
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (u *countingUploader) UploadMedia(_ context.Context, file *model.MediaFile) (*model.UploadResult, error) {
	n := u.inFlight.Add(1)
	for {
		p := u.peak.Load()
		if n <= p || u.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	u.inFlight.Add(-1)
	return &model.UploadResult{MediaURL: file.Name}, nil
}

func TestUploadAll_MaxParallel(t *testing.T) {
	uploader := &countingUploader{}
	staged := stagedFiles("a", "b", "c", "d", "e", "f")

	res, err := NewUploadService(uploader, 2).UploadAll(context.Background(), staged, nil)
	require.NoError(t, err)
	assert.Len(t, res, 6)
	assert.LessOrEqual(t, uploader.peak.Load(), int32(2))
}

// barrierUploader 每个上传都阻塞到全部上传均已开始
type barrierUploader struct {
	started sync.WaitGroup
	all     chan struct{}
}

func newBarrierUploader(n int) *barrierUploader {
	u := &barrierUploader{all: make(chan struct{})}
	u.started.Add(n)
	go func() {
		u.started.Wait()
		close(u.all)
	}()
	return u
}

func (u *barrierUploader) UploadMedia(ctx context.Context, file *model.MediaFile) (*model.UploadResult, error) {
	u.started.Done()
	select {
	case <-u.all:
		return &model.UploadResult{MediaURL: file.Name}, nil
	case <-time.After(2 * time.Second):
		return nil, errors.New("uploads did not start together")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestUploadAll_UnboundedRunsConcurrently(t *testing.T) {
	staged := stagedFiles("a", "b", "c", "d", "e")
	uploader := newBarrierUploader(len(staged))

	res, err := NewUploadService(uploader, 0).UploadAll(context.Background(), staged, nil)
	require.NoError(t, err)
	require.Len(t, res, 5)
	for i, m := range staged {
		assert.Equal(t, m.File.Name, res[i].MediaURL)
	}
}

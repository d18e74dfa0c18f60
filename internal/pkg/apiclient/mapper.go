package apiclient

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
)

// 服务端 created_at 可能不带时区
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: copier.String,
			DstType: time.Time{},
			Fn: func(src interface{}) (interface{}, error) {
				return parseTime(src.(string)), nil
			},
		},
	},
}

func toPost(d *dto.PostDTO) (*model.Post, error) {
	p := &model.Post{}
	if err := copier.CopyWithOption(p, d, copyOption); err != nil {
		return nil, fmt.Errorf("failed to map post %d: %w", d.ID, err)
	}
	if err := copier.Copy(&p.Author, &d.User); err != nil {
		return nil, fmt.Errorf("failed to map author of post %d: %w", d.ID, err)
	}
	return p, nil
}

func toPostPage(resp *dto.PostListResp) (*model.PostPage, error) {
	page := &model.PostPage{Posts: make([]*model.Post, 0, len(resp.Posts))}
	for i := range resp.Posts {
		p, err := toPost(&resp.Posts[i])
		if err != nil {
			return nil, err
		}
		page.Posts = append(page.Posts, p)
	}
	if err := copier.Copy(&page.Pagination, &resp.Pagination); err != nil {
		return nil, fmt.Errorf("failed to map pagination: %w", err)
	}
	return page, nil
}

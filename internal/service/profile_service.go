package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/store"
	"Agora/internal/pkg/util"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

// ProfileAPI 资料相关的远端调用
type ProfileAPI interface {
	GetProfile(ctx context.Context) (*dto.ProfileDTO, error)
	GetUserProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, patch *dto.ProfileUpdateDTO) (string, error)
	UploadProfileImage(ctx context.Context, file *model.MediaFile) (string, error)
}

type ProfileService interface {
	Current(ctx context.Context) (*model.Profile, error)
	Update(ctx context.Context, patch *model.ProfilePatch) (*model.Profile, error)
	Reset(ctx context.Context) error
	Fetch(ctx context.Context, userID uint64) (*model.Profile, error)
	UploadAvatar(ctx context.Context, file *model.MediaFile) (*model.Profile, error)
}

type ProfileServiceImpl struct {
	store store.Store
	api   ProfileAPI
}

func NewProfileService(st store.Store, api ProfileAPI) ProfileService {
	return &ProfileServiceImpl{
		store: st,
		api:   api,
	}
}

// Current 读取本地快照，无缓存或缓存损坏时返回默认资料
func (s *ProfileServiceImpl) Current(ctx context.Context) (*model.Profile, error) {
	raw, ok, err := s.store.Get(ctx, consts.ProfileKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return model.DefaultProfile(), nil
	}

	profile := &model.Profile{}
	if err = json.Unmarshal([]byte(raw), profile); err != nil {
		log.WarnContext(ctx, "cached profile is corrupt, falling back to default", "err", err)
		return model.DefaultProfile(), nil
	}
	return profile, nil
}

// Update 补丁中出现的字段覆盖本地快照后再同步到服务端
// 服务端失败时本地写入仍然保留，错误返回给调用方
func (s *ProfileServiceImpl) Update(ctx context.Context, patch *model.ProfilePatch) (*model.Profile, error) {
	profile, err := s.save(ctx, func(p *model.Profile) error {
		patch.Apply(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	body := toProfileUpdate(patch)
	if body == nil {
		return profile, nil
	}
	if _, err = s.api.UpdateProfile(ctx, body); err != nil {
		log.WarnContext(ctx, "profile saved locally but remote update failed", "err", err)
		return profile, fmt.Errorf("remote profile update failed: %w", err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) Reset(ctx context.Context) error {
	return s.store.Remove(ctx, consts.ProfileKey)
}

// Fetch userID 为 0 时获取当前登录用户
func (s *ProfileServiceImpl) Fetch(ctx context.Context, userID uint64) (*model.Profile, error) {
	var (
		remote *dto.ProfileDTO
		err    error
	)
	if userID == 0 {
		remote, err = s.api.GetProfile(ctx)
	} else {
		remote, err = s.api.GetUserProfile(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return fromProfileDTO(remote), nil
}

// UploadAvatar 上传头像并写入本地快照
func (s *ProfileServiceImpl) UploadAvatar(ctx context.Context, file *model.MediaFile) (*model.Profile, error) {
	contentType := util.NormalizeMediaType(file.ContentType)
	if _, ok := consts.AllowedMediaTypes[contentType]; !ok || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, &MediaRejectedError{FileName: file.Name, Err: ErrInvalidFileType}
	}
	if file.Size > consts.MaxMediaSize {
		return nil, &MediaRejectedError{FileName: file.Name, Err: ErrFileTooLarge}
	}

	imageURL, err := s.api.UploadProfileImage(ctx, file)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, func(p *model.Profile) error {
		return copier.CopyWithOption(p, &model.Profile{AvatarURL: imageURL}, copier.Option{IgnoreEmpty: true})
	})
}

// save 在当前快照上执行修改并持久化
func (s *ProfileServiceImpl) save(ctx context.Context, mutate func(p *model.Profile) error) (*model.Profile, error) {
	profile, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if err = mutate(profile); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}
	if err = s.store.Put(ctx, consts.ProfileKey, string(raw)); err != nil {
		return nil, err
	}
	return profile, nil
}

// toProfileUpdate 只携带服务端接受的字段，没有可同步内容时返回 nil
// 列表字段为空时不会发送，服务端列表只能替换不能清空
func toProfileUpdate(p *model.ProfilePatch) *dto.ProfileUpdateDTO {
	body := &dto.ProfileUpdateDTO{Bio: p.Bio}
	if p.Skills != nil {
		for _, name := range *p.Skills {
			body.Skills = append(body.Skills, dto.SkillDTO{Name: name})
		}
	}
	if p.Experience != nil {
		for _, e := range *p.Experience {
			body.Experiences = append(body.Experiences, dto.ExperienceDTO{
				Company: e.Company,
				Role:    e.Role,
				Years:   leadingInt(e.Duration),
			})
		}
	}
	if p.Education != nil {
		for _, e := range *p.Education {
			body.Educations = append(body.Educations, dto.EducationDTO{
				Institution: e.Institution,
				Degree:      e.Degree,
				Year:        leadingInt(e.Year),
			})
		}
	}
	if body.Bio == nil && body.Skills == nil && body.Experiences == nil && body.Educations == nil {
		return nil
	}
	return body
}

func fromProfileDTO(d *dto.ProfileDTO) *model.Profile {
	p := &model.Profile{Bio: util.Deref(d.Bio)}
	if d.User != nil {
		p.Name = d.User.Username
		p.AvatarURL = util.Deref(d.User.AvatarURL)
		if d.User.Email != "" {
			p.Contact = &model.Contact{Email: d.User.Email}
		}
	}
	for _, sk := range d.Skills {
		p.Skills = append(p.Skills, sk.Name)
	}
	for _, e := range d.Experiences {
		item := model.Experience{Company: e.Company, Role: e.Role}
		if e.Years != nil {
			item.Duration = fmt.Sprintf("%d years", *e.Years)
		}
		p.Experience = append(p.Experience, item)
	}
	for _, e := range d.Educations {
		item := model.Education{Institution: e.Institution, Degree: e.Degree}
		if e.Year != nil {
			item.Year = strconv.Itoa(*e.Year)
		}
		p.Education = append(p.Education, item)
	}
	return p
}

func leadingInt(s string) *int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

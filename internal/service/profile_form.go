package service

import (
	"Agora/internal/model"
	"Agora/internal/pkg/util"
	"errors"
	"maps"
	"slices"
	"strings"
)

const (
	FieldAvatarURL = "avatarUrl"
	FieldName      = "name"
	FieldTitle     = "title"
	FieldLocation  = "location"
	FieldBio       = "bio"
	FieldSkills    = "skills"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldLinkedIn  = "linkedin"
	FieldGitHub    = "github"
)

// ProfileFields 表单字段的展示与校验顺序
var ProfileFields = []string{
	FieldAvatarURL, FieldName, FieldTitle, FieldLocation, FieldBio,
	FieldSkills, FieldEmail, FieldPhone, FieldLinkedIn, FieldGitHub,
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func fieldRule(field, tag string, err error) util.Rule {
	return util.Rule{Tag: tag, Err: &ValidationError{Field: field, Err: err}}
}

// profileRules 输入变化与提交时共用同一张规则表
var profileRules = util.RuleTable{
	FieldName: {
		Normalize: strings.TrimSpace,
		Rules:     []util.Rule{fieldRule(FieldName, "required", ErrNameRequired)},
	},
	FieldTitle: {
		Normalize: strings.TrimSpace,
		Rules:     []util.Rule{fieldRule(FieldTitle, "required", ErrTitleRequired)},
	},
	FieldEmail: {
		Rules: []util.Rule{fieldRule(FieldEmail, "contact_email", ErrInvalidEmail)},
	},
	FieldPhone: {
		Normalize: stripSpaces,
		Rules:     []util.Rule{fieldRule(FieldPhone, "omitempty,phone", ErrInvalidPhone)},
	},
}

// ProfileForm 资料编辑表单
type ProfileForm struct {
	values map[string]string
	errs   map[string]error
}

// NewProfileForm 以当前资料预填表单
func NewProfileForm(p *model.Profile) *ProfileForm {
	values := map[string]string{
		FieldAvatarURL: p.AvatarURL,
		FieldName:      p.Name,
		FieldTitle:     p.Title,
		FieldLocation:  p.Location,
		FieldBio:       p.Bio,
		FieldSkills:    strings.Join(p.Skills, ", "),
		FieldLinkedIn:  p.SocialURL("LinkedIn"),
		FieldGitHub:    p.SocialURL("GitHub"),
	}
	if p.Contact != nil {
		values[FieldEmail] = p.Contact.Email
		values[FieldPhone] = p.Contact.Phone
	}
	return &ProfileForm{
		values: values,
		errs:   make(map[string]error),
	}
}

// Set 修改字段并立即校验该字段
func (f *ProfileForm) Set(field, value string) error {
	if !slices.Contains(ProfileFields, field) {
		return ErrUnknownField
	}
	f.values[field] = value
	if err := profileRules.Check(field, value); err != nil {
		f.errs[field] = err
		return err
	}
	delete(f.errs, field)
	return nil
}

func (f *ProfileForm) Get(field string) string {
	return f.values[field]
}

// Errors 当前各字段的校验错误
func (f *ProfileForm) Errors() map[string]error {
	return maps.Clone(f.errs)
}

// Validate 提交前校验全部字段，错误按字段顺序合并
func (f *ProfileForm) Validate() error {
	f.errs = profileRules.CheckAll(f.values)
	var errs []error
	for _, field := range ProfileFields {
		if err, ok := f.errs[field]; ok {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Patch 由表单生成资料补丁，表单覆盖的字段全部写入，清空的字段随之清空
func (f *ProfileForm) Patch() *model.ProfilePatch {
	skills := util.SplitList(f.values[FieldSkills])
	var links []model.SocialLink
	for _, link := range []model.SocialLink{
		{Platform: "LinkedIn", URL: f.values[FieldLinkedIn]},
		{Platform: "GitHub", URL: f.values[FieldGitHub]},
	} {
		if link.URL != "" {
			links = append(links, link)
		}
	}
	return &model.ProfilePatch{
		AvatarURL:   util.Ptr(f.values[FieldAvatarURL]),
		Name:        util.Ptr(f.values[FieldName]),
		Title:       util.Ptr(f.values[FieldTitle]),
		Location:    util.Ptr(f.values[FieldLocation]),
		Bio:         util.Ptr(f.values[FieldBio]),
		Skills:      &skills,
		SocialLinks: &links,
		Contact: &model.Contact{
			Email: f.values[FieldEmail],
			Phone: f.values[FieldPhone],
		},
	}
}

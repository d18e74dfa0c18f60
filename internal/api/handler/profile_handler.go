package handler

import (
	"Agora/internal/model"
	"Agora/internal/pkg/response"
	"Agora/internal/service"
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileSvc: profileSvc,
	}
}

// editFlags 命令行参数到表单字段
var editFlags = map[string]string{
	"avatar-url": service.FieldAvatarURL,
	"name":       service.FieldName,
	"title":      service.FieldTitle,
	"location":   service.FieldLocation,
	"bio":        service.FieldBio,
	"skills":     service.FieldSkills,
	"email":      service.FieldEmail,
	"phone":      service.FieldPhone,
	"linkedin":   service.FieldLinkedIn,
	"github":     service.FieldGitHub,
}

// Show agora profile show [--user ID] [--remote] [--json]
func (s *ProfileHandler) Show(ctx context.Context, args []string, w io.Writer) error {
	fs := newFlagSet("profile show", w)
	userID := fs.Uint64("user", 0, "show another user's profile from the server")
	remote := fs.Bool("remote", false, "fetch from the server instead of the local cache")
	asJSON := fs.Bool("json", false, "print raw JSON")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	var (
		profile *model.Profile
		err     error
	)
	if *remote || *userID != 0 {
		profile, err = s.profileSvc.Fetch(ctx, *userID)
	} else {
		profile, err = s.profileSvc.Current(ctx)
	}
	if err != nil {
		return err
	}

	if *asJSON {
		return response.JSON(w, profile)
	}
	renderProfile(w, profile)
	return nil
}

// Edit agora profile edit [--name ..] [--title ..] ...
func (s *ProfileHandler) Edit(ctx context.Context, args []string, w io.Writer) error {
	fs := newFlagSet("profile edit", w)
	for _, flag := range slices.Sorted(maps.Keys(editFlags)) {
		fs.String(flag, "", "set "+editFlags[flag])
	}
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NFlag() == 0 {
		return fmt.Errorf("%w: nothing to update", service.ErrInvalidArgs)
	}

	current, err := s.profileSvc.Current(ctx)
	if err != nil {
		return err
	}
	form := service.NewProfileForm(current)
	fs.Visit(func(f *pflag.Flag) {
		if err := form.Set(editFlags[f.Name], f.Value.String()); err != nil {
			response.Success(w, "%s: %s", f.Name, err)
		}
	})
	if err = form.Validate(); err != nil {
		return err
	}

	profile, err := s.profileSvc.Update(ctx, form.Patch())
	if profile != nil {
		response.Success(w, "Profile saved locally.")
	}
	if err != nil {
		return err
	}
	response.Success(w, "Profile updated.")
	return nil
}

// Avatar agora profile avatar FILE
func (s *ProfileHandler) Avatar(ctx context.Context, args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: agora profile avatar FILE", service.ErrInvalidArgs)
	}
	files, err := openMediaFiles(args)
	if err != nil {
		return err
	}

	profile, err := s.profileSvc.UploadAvatar(ctx, files[0])
	if err != nil {
		return err
	}
	response.Success(w, "Avatar updated: %s", profile.AvatarURL)
	return nil
}

func (s *ProfileHandler) Reset(ctx context.Context, _ []string, w io.Writer) error {
	if err := s.profileSvc.Reset(ctx); err != nil {
		return err
	}
	response.Success(w, "Local profile cleared.")
	return nil
}

func renderProfile(w io.Writer, p *model.Profile) {
	response.Success(w, "%s", p.Name)
	if p.Title != "" {
		response.Success(w, "%s", p.Title)
	}
	if p.Location != "" {
		response.Success(w, "%s", p.Location)
	}
	if p.AvatarURL != "" {
		response.Success(w, "avatar: %s", p.AvatarURL)
	}
	if p.Bio != "" {
		response.Success(w, "\n%s", p.Bio)
	}
	if len(p.Skills) > 0 {
		response.Success(w, "\nSkills: %s", strings.Join(p.Skills, ", "))
	}
	if len(p.Experience) > 0 {
		response.Success(w, "\nExperience")
		for _, e := range p.Experience {
			response.Success(w, "  %s, %s (%s)", e.Role, e.Company, e.Duration)
			if e.Description != "" {
				response.Success(w, "    %s", e.Description)
			}
		}
	}
	if len(p.Education) > 0 {
		response.Success(w, "\nEducation")
		for _, e := range p.Education {
			response.Success(w, "  %s, %s (%s)", e.Degree, e.Institution, e.Year)
		}
	}
	if p.Contact != nil {
		response.Success(w, "\nContact: %s %s", p.Contact.Email, p.Contact.Phone)
	}
	for _, l := range p.SocialLinks {
		response.Success(w, "%s: %s", l.Platform, l.URL)
	}
}

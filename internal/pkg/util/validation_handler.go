package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	phoneRegex        = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	contactEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return contactEmailRegex.MatchString(fl.Field().String())
	})
}

// Rule 一条校验规则，Tag 为 validator 标签，失败时返回 Err
type Rule struct {
	Tag string
	Err error
}

// FieldRules 字段先经过 Normalize 再按顺序执行 Rules，命中第一条失败即停止
type FieldRules struct {
	Normalize func(string) string
	Rules     []Rule
}

// RuleTable 字段名到校验规则的声明式映射
type RuleTable map[string]FieldRules

// Check 校验单个字段，输入变化时调用
func (t RuleTable) Check(field, value string) error {
	fr, ok := t[field]
	if !ok {
		return nil
	}
	if fr.Normalize != nil {
		value = fr.Normalize(value)
	}
	for _, r := range fr.Rules {
		if err := validate.Var(value, r.Tag); err != nil {
			return r.Err
		}
	}
	return nil
}

// CheckAll 提交时校验表中所有字段，缺失的字段按空串处理
func (t RuleTable) CheckAll(values map[string]string) map[string]error {
	errs := make(map[string]error)
	for field := range t {
		if err := t.Check(field, values[field]); err != nil {
			errs[field] = err
		}
	}
	return errs
}

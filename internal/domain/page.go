package domain

import "strings"

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PageList 列表查询信封：搜索串 + skip/take + 按 updated_at 排序
type PageList struct {
	SearchString string    `form:"searchString"`
	Skip         int       `form:"skip"`
	Take         int       `form:"take"`
	OrderBy      SortOrder `form:"orderBy"`
}

// Desc 缺省为倒序
func (p PageList) Desc() bool {
	return !strings.EqualFold(string(p.OrderBy), string(SortAsc))
}

// Valid 只接受空、asc、desc；skip/take 小于等于 0 视为未设置
func (p PageList) Valid() bool {
	switch strings.ToLower(string(p.OrderBy)) {
	case "", string(SortAsc), string(SortDesc):
		return true
	}
	return false
}

type ItemFilter struct {
	PageList
	IsDraft *bool `form:"isDraft"`
}

type UserFilter struct {
	PageList
	IsActive      *bool `form:"isActive"`
	IsDeactivated *bool `form:"isDeactivated"`
	IsDeleted     *bool `form:"isDeleted"`

	// IncludeDeleted 仅管理端使用，不从查询参数绑定
	IncludeDeleted bool `form:"-"`
}

package repo

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-gin-gorm-inventory/internal/domain"
)

func active(db *gorm.DB) *gorm.DB { return db.Where("is_deleted = ?", false) }

// contains 大小写敏感子串匹配，多列 OR；cols 只允许传常量列名
func contains(term string, cols ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(cols) == 0 {
			return db
		}
		parts := make([]string, 0, len(cols))
		args := make([]any, 0, len(cols))
		for _, col := range cols {
			switch db.Dialector.Name() {
			case "postgres":
				parts = append(parts, "strpos("+col+", ?) > 0")
				args = append(args, term)
			case "mysql":
				parts = append(parts, "INSTR(BINARY "+col+", ?) > 0")
				args = append(args, term)
			case "sqlite":
				parts = append(parts, "instr("+col+", ?) > 0")
				args = append(args, term)
			default:
				parts = append(parts, col+` LIKE ? ESCAPE '\'`)
				args = append(args, "%"+escapeLike(term)+"%")
			}
		}
		return db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// paginate skip/take <= 0 表示不限制；按 updated_at 排序，id 兜底保证稳定
func paginate(p domain.PageList) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Skip > 0 {
			db = db.Offset(p.Skip)
		}
		if p.Take > 0 {
			db = db.Limit(p.Take)
		}
		desc := p.Desc()
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "updated_at"}, Desc: desc}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})
	}
}

func eq(col string, v *bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v == nil {
			return db
		}
		return db.Where(col+" = ?", *v)
	}
}

// wrap 唯一冲突统一成 domain.ErrAlreadyExists，同时保留驱动错误
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDupKey(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrAlreadyExists, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isDupKey 未开启 TranslateError 的方言按错误文本兜底
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}

func notFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }

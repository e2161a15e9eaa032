// Package chatquery builds SQL filter fragments for chat-export queries.
// The fragments are composed with squirrel so chat identifiers bind as
// placeholder arguments instead of being spliced into the SQL text.
package chatquery

import (
	"regexp"

	sq "github.com/Masterminds/squirrel"

	"vcard_phone_tools/platform/apperr"
)

// Supported platforms for group-aware chat filtering.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// identifier matches a bare or table-qualified column reference.
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// EmptyChatCondition returns the predicate that keeps non-empty chats:
// hidden chats are excluded unless they are the status broadcast or an
// actual broadcast. When enabled is false there is nothing to filter and
// the condition is nil.
func EmptyChatCondition(enabled bool, jidColumn, broadcastColumn string) (sq.Sqlizer, error) {
	if !enabled {
		return nil, nil
	}
	if !identifier.MatchString(jidColumn) {
		return nil, apperr.Validation("invalid jid column identifier").WithOp("chatquery.EmptyChatCondition")
	}
	if !identifier.MatchString(broadcastColumn) {
		return nil, apperr.Validation("invalid broadcast column identifier").WithOp("chatquery.EmptyChatCondition")
	}

	return sq.Or{
		sq.Expr("chat.hidden = 0"),
		sq.Eq{jidColumn: "status@broadcast"},
		sq.Expr(broadcastColumn + " > 0"),
	}, nil
}

// ChatCondition returns the predicate that includes or excludes chats whose
// identifier contains one of the filter values. columns[0] is matched for
// every chat; when jidColumn is set, columns[1] is matched as well, guarded
// by the platform-specific group predicate. A nil filter means no condition.
func ChatCondition(filter []string, include bool, columns []string, jidColumn, platform string) (sq.Sqlizer, error) {
	if filter == nil {
		return nil, nil
	}
	if len(columns) == 0 {
		return nil, apperr.Validation("at least one column is required").WithOp("chatquery.ChatCondition")
	}
	for _, col := range columns {
		if !identifier.MatchString(col) {
			return nil, apperr.Validation("invalid column identifier: " + col).WithOp("chatquery.ChatCondition")
		}
	}

	groupPredicate := ""
	if jidColumn != "" {
		if len(columns) < 2 {
			return nil, apperr.Validation("at least two columns are required when a jid column is given").WithOp("chatquery.ChatCondition")
		}
		if !identifier.MatchString(jidColumn) {
			return nil, apperr.Validation("invalid jid column identifier").WithOp("chatquery.ChatCondition")
		}
		switch platform {
		case PlatformAndroid:
			groupPredicate = jidColumn + ".type = 1"
		case PlatformIOS:
			groupPredicate = jidColumn + " IS NOT NULL"
		default:
			return nil, apperr.Validation("platform must be android or ios when a jid column is given").WithOp("chatquery.ChatCondition")
		}
	}

	if include {
		cond := sq.Or{}
		for _, chat := range filter {
			cond = append(cond, sq.Like{columns[0]: contains(chat)})
			if groupPredicate != "" {
				cond = append(cond, sq.And{
					sq.Like{columns[1]: contains(chat)},
					sq.Expr(groupPredicate),
				})
			}
		}
		return cond, nil
	}

	cond := sq.And{}
	for _, chat := range filter {
		cond = append(cond, sq.NotLike{columns[0]: contains(chat)})
		if groupPredicate != "" {
			cond = append(cond, sq.And{
				sq.NotLike{columns[1]: contains(chat)},
				sq.Expr(groupPredicate),
			})
		}
	}
	return cond, nil
}

func contains(s string) string {
	return "%" + s + "%"
}

package if97

import (
	"errors"
	"fmt"
)

// ErrDomain はすべての DomainError に一致します。errors.Is で判定してください。
var ErrDomain = errors.New("if97: domain error")

// Reason は DomainError の詳細区分です。
type Reason int

const (
	// 入力が適用範囲(または境界曲線の定義域)の外
	ReasonOutOfRange Reason = iota + 1

	// 適用範囲内だが、この実装では計算できない領域(領域3など)
	ReasonUnsupportedRegion

	// 呼び出し側が不正な領域番号を渡した
	ReasonUnknownRegion
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfRange:
		return "out of range"
	case ReasonUnsupportedRegion:
		return "unsupported region"
	case ReasonUnknownRegion:
		return "unknown region"
	}
	return "unknown reason"
}

// DomainError は適用範囲外の入力に対して返されるエラーです。
type DomainError struct {
	Op     string // 関数名 (例: "Psat")
	Reason Reason
	Region Region // 判定された領域 (不明の場合は0)
	Detail string
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("if97: %s: %s", e.Op, e.Reason)
	if e.Region != 0 {
		msg += fmt.Sprintf(" (%s)", e.Region)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func outOfRange(op string, format string, args ...interface{}) error {
	return &DomainError{Op: op, Reason: ReasonOutOfRange, Detail: fmt.Sprintf(format, args...)}
}

func unsupported(op string, r Region) error {
	return &DomainError{Op: op, Reason: ReasonUnsupportedRegion, Region: r}
}

func unknownRegion(op string, r Region) error {
	return &DomainError{Op: op, Reason: ReasonUnknownRegion, Detail: fmt.Sprintf("region code %d", int(r))}
}

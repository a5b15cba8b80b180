package wuxing

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/errors"
)

var (
	// ErrInvalidStem 天干不在十天干之内
	ErrInvalidStem = errors.BadRequest("INVALID_STEM", "invalid heavenly stem")
	// ErrInvalidBranch 地支不在十二地支之内
	ErrInvalidBranch = errors.BadRequest("INVALID_BRANCH", "invalid earthly branch")
)

// Stem 天干，零值非法
type Stem uint8

const (
	Jia  Stem = iota + 1 // 甲
	Yi                   // 乙
	Bing                 // 丙
	Ding                 // 丁
	Wu                   // 戊
	Ji                   // 己
	Geng                 // 庚
	Xin                  // 辛
	Ren                  // 壬
	Gui                  // 癸
)

// Stems 十天干，按甲乙丙丁戊己庚辛壬癸排列
var Stems = [...]Stem{Jia, Yi, Bing, Ding, Wu, Ji, Geng, Xin, Ren, Gui}

var stemNames = [...]string{
	Jia: "甲", Yi: "乙", Bing: "丙", Ding: "丁", Wu: "戊",
	Ji: "己", Geng: "庚", Xin: "辛", Ren: "壬", Gui: "癸",
}

var stemElements = [...]Element{
	Jia: Wood, Yi: Wood,
	Bing: Fire, Ding: Fire,
	Wu: Earth, Ji: Earth,
	Geng: Metal, Xin: Metal,
	Ren: Water, Gui: Water,
}

var stemPolarities = [...]Polarity{
	Jia: Yang, Yi: Yin,
	Bing: Yang, Ding: Yin,
	Wu: Yang, Ji: Yin,
	Geng: Yang, Xin: Yin,
	Ren: Yang, Gui: Yin,
}

// ParseStem 解析单个天干字符
func ParseStem(s string) (Stem, error) {
	for _, st := range Stems {
		if stemNames[st] == s {
			return st, nil
		}
	}
	return 0, invalidStem(s)
}

func invalidStem(v any) error {
	return errors.BadRequest(ErrInvalidStem.Reason, fmt.Sprintf("invalid heavenly stem %q", fmt.Sprint(v)))
}

// Valid 是否为十天干之一
func (s Stem) Valid() bool {
	return s >= Jia && s <= Gui
}

// Check 非法天干返回 ErrInvalidStem
func (s Stem) Check() error {
	if !s.Valid() {
		return invalidStem(uint8(s))
	}
	return nil
}

// Element 天干五行
func (s Stem) Element() Element {
	if !s.Valid() {
		return 0
	}
	return stemElements[s]
}

// Polarity 天干阴阳
func (s Stem) Polarity() Polarity {
	if !s.Valid() {
		return 0
	}
	return stemPolarities[s]
}

func (s Stem) String() string {
	if !s.Valid() {
		return "?"
	}
	return stemNames[s]
}

// MarshalText 以中文字符序列化
func (s Stem) MarshalText() ([]byte, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	return []byte(stemNames[s]), nil
}

// UnmarshalText 从中文字符反序列化
func (s *Stem) UnmarshalText(b []byte) error {
	v, err := ParseStem(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Branch 地支，零值非法
type Branch uint8

const (
	BranchZi   Branch = iota + 1 // 子
	BranchChou                   // 丑
	BranchYin                    // 寅
	BranchMao                    // 卯
	BranchChen                   // 辰
	BranchSi                     // 巳
	BranchWu                     // 午
	BranchWei                    // 未
	BranchShen                   // 申
	BranchYou                    // 酉
	BranchXu                     // 戌
	BranchHai                    // 亥
)

// Branches 十二地支，按子丑寅卯辰巳午未申酉戌亥排列
var Branches = [...]Branch{BranchZi, BranchChou, BranchYin, BranchMao, BranchChen, BranchSi, BranchWu, BranchWei, BranchShen, BranchYou, BranchXu, BranchHai}

var branchNames = [...]string{
	BranchZi: "子", BranchChou: "丑", BranchYin: "寅", BranchMao: "卯", BranchChen: "辰", BranchSi: "巳",
	BranchWu: "午", BranchWei: "未", BranchShen: "申", BranchYou: "酉", BranchXu: "戌", BranchHai: "亥",
}

// ParseBranch 解析单个地支字符
func ParseBranch(s string) (Branch, error) {
	for _, b := range Branches {
		if branchNames[b] == s {
			return b, nil
		}
	}
	return 0, invalidBranch(s)
}

func invalidBranch(v any) error {
	return errors.BadRequest(ErrInvalidBranch.Reason, fmt.Sprintf("invalid earthly branch %q", fmt.Sprint(v)))
}

// Valid 是否为十二地支之一
func (b Branch) Valid() bool {
	return b >= BranchZi && b <= BranchHai
}

// Check 非法地支返回 ErrInvalidBranch
func (b Branch) Check() error {
	if !b.Valid() {
		return invalidBranch(uint8(b))
	}
	return nil
}

func (b Branch) String() string {
	if !b.Valid() {
		return "?"
	}
	return branchNames[b]
}

// MarshalText 以中文字符序列化
func (b Branch) MarshalText() ([]byte, error) {
	if err := b.Check(); err != nil {
		return nil, err
	}
	return []byte(branchNames[b]), nil
}

// UnmarshalText 从中文字符反序列化
func (b *Branch) UnmarshalText(data []byte) error {
	v, err := ParseBranch(string(data))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

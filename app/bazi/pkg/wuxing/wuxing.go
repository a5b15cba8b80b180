// Package wuxing 五行、阴阳、天干地支的静态知识表
//
// 所有表都是以枚举为下标的数组，进程启动后不再修改，可并发读取。
package wuxing

// Element 五行
type Element uint8

const (
	Wood  Element = iota + 1 // 木
	Fire                     // 火
	Earth                    // 土
	Metal                    // 金
	Water                    // 水
)

// Elements 按相生顺序排列的五行
var Elements = [...]Element{Wood, Fire, Earth, Metal, Water}

var elementNames = [...]string{
	Wood:  "木",
	Fire:  "火",
	Earth: "土",
	Metal: "金",
	Water: "水",
}

// 相生：木→火→土→金→水→木
var generates = [...]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}

// 相克：木克土，土克水，水克火，火克金，金克木
var restrains = [...]Element{
	Wood:  Earth,
	Earth: Water,
	Water: Fire,
	Fire:  Metal,
	Metal: Wood,
}

// Valid 是否为合法五行
func (e Element) Valid() bool {
	return e >= Wood && e <= Water
}

// Generates 返回 e 所生的五行
func (e Element) Generates() Element {
	if !e.Valid() {
		return 0
	}
	return generates[e]
}

// Restrains 返回 e 所克的五行
func (e Element) Restrains() Element {
	if !e.Valid() {
		return 0
	}
	return restrains[e]
}

func (e Element) String() string {
	if !e.Valid() {
		return "?"
	}
	return elementNames[e]
}

// MarshalText 以中文名序列化
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Polarity 阴阳
type Polarity uint8

const (
	Yang Polarity = iota + 1 // 阳
	Yin                      // 阴
)

func (p Polarity) String() string {
	switch p {
	case Yang:
		return "阳"
	case Yin:
		return "阴"
	default:
		return "?"
	}
}

// MarshalText 以中文名序列化
func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Package shishen 以日主为基准推算十神
package shishen

import (
	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/wuxing"
)

// TenGod 十神
type TenGod uint8

const (
	BiJian    TenGod = iota + 1 // 比肩：同五行同阴阳
	JieCai                      // 劫财：同五行异阴阳
	ShiShen                     // 食神：我生，同阴阳
	ShangGuan                   // 伤官：我生，异阴阳
	ZhengCai                    // 正财：我克，同阴阳
	PianCai                     // 偏财：我克，异阴阳
	ZhengGuan                   // 正官：克我，异阴阳
	QiSha                       // 七杀：克我，同阴阳
	ZhengYin                    // 正印：生我，同阴阳
	PianYin                     // 偏印：生我，异阴阳
)

// TenGods 全部十神
var TenGods = [...]TenGod{BiJian, JieCai, ShiShen, ShangGuan, ZhengCai, PianCai, ZhengGuan, QiSha, ZhengYin, PianYin}

var labels = [...]string{
	BiJian:    "比肩",
	JieCai:    "劫财",
	ShiShen:   "食神",
	ShangGuan: "伤官",
	ZhengCai:  "正财",
	PianCai:   "偏财",
	ZhengGuan: "正官",
	QiSha:     "七杀",
	ZhengYin:  "正印",
	PianYin:   "偏印",
}

func (g TenGod) Valid() bool {
	return g >= BiJian && g <= PianYin
}

func (g TenGod) String() string {
	if !g.Valid() {
		return ""
	}
	return labels[g]
}

// MarshalText 以中文名序列化
func (g TenGod) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// relation 日主与他干的五行关系
type relation uint8

const (
	generatesMe relation = iota + 1 // 生我
	iGenerate                       // 我生
	restrainsMe                     // 克我
	iRestrain                       // 我克
	sameElement                     // 同我
)

// relationOf 按 生我、我生、克我、我克、同我 的顺序判定
func relationOf(me, other wuxing.Element) relation {
	switch {
	case other.Generates() == me:
		return generatesMe
	case me.Generates() == other:
		return iGenerate
	case other.Restrains() == me:
		return restrainsMe
	case me.Restrains() == other:
		return iRestrain
	default:
		return sameElement
	}
}

// Classify 返回 other 相对日主 dayMaster 的十神
func Classify(dayMaster, other wuxing.Stem) (TenGod, error) {
	if err := dayMaster.Check(); err != nil {
		return 0, err
	}
	if err := other.Check(); err != nil {
		return 0, err
	}
	if other == dayMaster {
		return BiJian, nil
	}

	sameP := other.Polarity() == dayMaster.Polarity()
	switch relationOf(dayMaster.Element(), other.Element()) {
	case generatesMe:
		return pick(sameP, ZhengYin, PianYin), nil
	case iGenerate:
		return pick(sameP, ShiShen, ShangGuan), nil
	case restrainsMe:
		return pick(sameP, QiSha, ZhengGuan), nil
	case iRestrain:
		return pick(sameP, ZhengCai, PianCai), nil
	case sameElement:
		return pick(sameP, BiJian, JieCai), nil
	}
	panic("shishen: unreachable element relation")
}

func pick(sameP bool, same, diff TenGod) TenGod {
	if sameP {
		return same
	}
	return diff
}

package report

import (
	"fmt"
	"strings"

	"github.com/iWorld-y/bazi_coach/app/bazi/pkg/chart"
)

// Section 报告的一个模块
type Section string

const (
	SectionOverview    Section = "overview"     // 命盘概览
	SectionTenGods     Section = "ten_gods"     // 十神人格互动
	SectionActionGuide Section = "action_guide" // 自我赋能与成长计划
)

// Sections 按生成顺序排列
var Sections = []Section{SectionOverview, SectionTenGods, SectionActionGuide}

const systemPrompt = "请调用八字知识库内的知识。用细腻的文笔代入具体的场景，引发共鸣与思考。"

const overviewPrompt = `你是一位八字教练，请根据以下命盘数据，撰写“命盘概览”模块，包含以下四部分：
1. 【八字命盘展示】
* 简洁文本方式列出年、月、日、时柱（带天干地支），并清晰标注“日主”。
2. 【日主解读 · 我的内在之光】
* 开篇解释“日主”概念；
* 分析日主五行属性、状态（得令/受制/得生等）及其在整张命盘中的互动；
* 引出日主所象征的性格核心、行动风格和情绪表达方式；
3. 【五行能量分布 · 我的内在气候】
* 分析五行结构，指出偏旺/偏弱的元素；
* 强调五行之间的互动关系，并与情绪模式、身心体验或惯性反应相连结；
4. 【反思邀请 · 我的共鸣写作】
* 你在生活中，何时最感受到这种“日主”能量？
* 哪种五行能量在你身上最常浮现？你如何与它相处？
* 是否有经验让你意识到自己“失衡”了？你如何找回自己？

请以专业、客观的口吻撰写，避免使用过于玄学或迷信的表述，重点强调八字所反映的性格特点和潜能。`

const tenGodsPrompt = `你是一位具备心理学与古典命理素养的八字分析者，请针对命盘中的十神结构，撰写人格互动分析。每个十神模块包含以下结构：
【十神名称】（如：正财、偏印等）
1. 天赋之光 · 我如何闪耀？
* 分析该十神的正向特质、具体展现方式；
2. 互动之舞 · 我与世界的关系
* 阐述该十神在社会关系、亲密关系或创造模式中的作用；
3. 成长契机 · 我如何平衡？
* 识别该十神在命盘中处于何种状态（透出/藏干/有根/受制），点出挑战、转化方向；
4. 反思邀请 · 与我对话
* 你是否认得出这种天赋？你在哪些时刻看见它？
* 你在互动中是否常常展现这种模式？它带来什么？
* 在你的人生中，它是否也曾带来困扰？你如何调和它？`

const actionGuidePrompt = `你是一位温柔而清晰的自我教练，请撰写“自我赋能与成长计划”模块，引导用户将认知转化为可落地的实践。模块结构如下：
1. 【我的优势清单与运用策略】
* 总结命盘中明显的优势特质（来自日主、十神、组合等）；
* 提供如何具体运用这些特质的建议场景（如职场、人际、创作）；
2. 【我的成长课题与应对智慧】
* 点出用户当前命盘中可成长之处（五行失衡、过强或受克等）；
* 给出温和可行的转化建议（身心练习、习惯建立、表达方式）；
3. 【目标导航仪·自我书写】
* 简要提示命盘中的某些倾向可能对应的发展领域；
* 提出 3 个开放式问题，帮助用户书写内心的答案；
* 最后一句鼓励语，引导用户把书写变成一种仪式感的行动。`

var sectionPrompts = map[Section]string{
	SectionOverview:    overviewPrompt,
	SectionTenGods:     tenGodsPrompt,
	SectionActionGuide: actionGuidePrompt,
}

// chartHeader 拼接命盘信息，作为每个模块提示词的开头
func chartHeader(a *chart.Annotated) string {
	c := a.Chart()
	dm := c.DayMaster()

	var sb strings.Builder
	fmt.Fprintf(&sb, "八字信息：%s\n", c.String())
	fmt.Fprintf(&sb, "日主：%s（%s%s）\n", dm, dm.Polarity(), dm.Element())
	fmt.Fprintf(&sb, "十神：年干%s为%s，月干%s为%s，时干%s为%s\n",
		c.Pillar(chart.Year).Stem, a.Year(),
		c.Pillar(chart.Month).Stem, a.Month(),
		c.Pillar(chart.Hour).Stem, a.Hour(),
	)
	if c.LunarDate() != "" {
		fmt.Fprintf(&sb, "农历：%s\n", c.LunarDate())
	}
	return sb.String()
}

func buildPrompt(section Section, a *chart.Annotated) string {
	return chartHeader(a) + sectionPrompts[section]
}

// fallbackText 模块生成失败时展示给用户的文字
func fallbackText(section Section) string {
	return fmt.Sprintf("生成%s报告时发生错误，请稍后再试。", section)
}

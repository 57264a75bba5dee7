package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ChatCompleter Advisor 依赖的最小聊天接口（测试时注入假实现）
type ChatCompleter interface {
	ChatWithOptions(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error)
	IsConfigured() bool
}

// Advisor 阿育吠陀顾问：把用户输入包装成提示词，
// 并对模型输出做严格的 JSON 结构校验。
type Advisor struct {
	client ChatCompleter
}

// NewAdvisor 创建顾问
func NewAdvisor(client ChatCompleter) *Advisor {
	return &Advisor{client: client}
}

// Recommendations 症状建议结果
type Recommendations struct {
	Recommendations string `json:"recommendations"`
}

// RecommendForSymptoms 根据症状描述生成阿育吠陀调理建议
func (a *Advisor) RecommendForSymptoms(ctx context.Context, symptoms string) (*Recommendations, error) {
	if !a.client.IsConfigured() {
		return nil, fmt.Errorf("AI API 未配置")
	}

	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return nil, fmt.Errorf("症状描述不能为空")
	}
	// 限制输入长度
	if len(symptoms) > 2000 {
		symptoms = symptoms[:2000]
	}

	prompt := fmt.Sprintf(`用户描述了以下身体/情绪症状，请从阿育吠陀的角度给出温和的生活方式调理建议。

症状:
%s

请用 JSON 格式返回（不要 markdown 代码块）:
{
  "recommendations": "调理建议（分条列出，中文）"
}

注意：
1. 建议只涉及饮食、作息、运动、呼吸练习等生活方式层面
2. 不做医学诊断，不推荐药物
3. 建议末尾提醒严重症状应就医`, symptoms)

	messages := []Message{
		{Role: "system", Content: "你是一个阿育吠陀养生顾问，只提供生活方式层面的温和建议，从不做医学诊断。回复必须是纯 JSON，不要 markdown。"},
		{Role: "user", Content: prompt},
	}

	response, err := a.client.ChatWithOptions(ctx, messages, 0.4, 800)
	if err != nil {
		return nil, fmt.Errorf("AI 调用失败: %w", err)
	}

	response = cleanJSONResponse(response)

	var result Recommendations
	if err := json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("解析 AI 响应失败: %w", err)
	}
	if strings.TrimSpace(result.Recommendations) == "" {
		return nil, fmt.Errorf("AI 响应缺少 recommendations 字段")
	}

	return &result, nil
}

// KoshaPlan 五鞘调理方案：四个板块 + 免责声明
type KoshaPlan struct {
	Diet       string `json:"diet"`
	Lifestyle  string `json:"lifestyle"`
	Yoga       string `json:"yoga"`
	Meditation string `json:"meditation"`
	Disclaimer string `json:"disclaimer"`
}

// prakritis 合法的体质标签。组合体质如 vata-pitta 也接受。
var prakritis = map[string]bool{
	"vata": true, "pitta": true, "kapha": true,
}

// ValidPrakriti 校验体质标签（单一或双体质组合）
func ValidPrakriti(prakriti string) bool {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(prakriti)), "-")
	if len(parts) == 0 || len(parts) > 2 {
		return false
	}
	for _, p := range parts {
		if !prakritis[p] {
			return false
		}
	}
	return true
}

// GenerateKoshaPlan 根据体质（和可选的困扰描述）生成调理方案
func (a *Advisor) GenerateKoshaPlan(ctx context.Context, prakriti, concerns string) (*KoshaPlan, error) {
	if !a.client.IsConfigured() {
		return nil, fmt.Errorf("AI API 未配置")
	}
	if !ValidPrakriti(prakriti) {
		return nil, fmt.Errorf("未知的体质标签: %s", prakriti)
	}

	concerns = strings.TrimSpace(concerns)
	if len(concerns) > 1000 {
		concerns = concerns[:1000]
	}

	var concernsBlock string
	if concerns != "" {
		concernsBlock = "\n用户当前的困扰:\n" + concerns + "\n"
	}

	prompt := fmt.Sprintf(`用户的阿育吠陀体质为 %s。%s
请围绕五鞘（pancha kosha）给出一份调理方案，JSON 格式返回（不要 markdown 代码块）:
{
  "diet": "饮食建议（中文）",
  "lifestyle": "作息与生活方式建议（中文）",
  "yoga": "适合的体式与呼吸法（中文）",
  "meditation": "冥想练习建议（中文）",
  "disclaimer": "一句免责声明（中文）"
}`, prakriti, concernsBlock)

	messages := []Message{
		{Role: "system", Content: "你是一个阿育吠陀与瑜伽顾问。回复必须是纯 JSON，不要 markdown，五个字段都不能为空。"},
		{Role: "user", Content: prompt},
	}

	response, err := a.client.ChatWithOptions(ctx, messages, 0.4, 1200)
	if err != nil {
		return nil, fmt.Errorf("AI 调用失败: %w", err)
	}

	response = cleanJSONResponse(response)

	var plan KoshaPlan
	if err := json.Unmarshal([]byte(response), &plan); err != nil {
		return nil, fmt.Errorf("解析 AI 响应失败: %w", err)
	}
	// 逐字段校验，缺一个都算失败
	for name, value := range map[string]string{
		"diet":       plan.Diet,
		"lifestyle":  plan.Lifestyle,
		"yoga":       plan.Yoga,
		"meditation": plan.Meditation,
		"disclaimer": plan.Disclaimer,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("AI 响应缺少 %s 字段", name)
		}
	}

	return &plan, nil
}

// cleanJSONResponse 清理 JSON 响应（移除 markdown 代码块和额外文本）
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	// 移除 ```json ... ``` 或 ``` ... ```
	if strings.Contains(response, "```") {
		jsonStart := strings.Index(response, "```json")
		if jsonStart == -1 {
			jsonStart = strings.Index(response, "```")
		}
		if jsonStart != -1 {
			startIdx := strings.Index(response[jsonStart:], "\n")
			if startIdx != -1 {
				response = response[jsonStart+startIdx+1:]
			}
		}
		if endIdx := strings.LastIndex(response, "```"); endIdx != -1 {
			response = response[:endIdx]
		}
	}

	response = strings.TrimSpace(response)

	// 处理 AI 添加的前缀/后缀文字
	if !strings.HasPrefix(response, "{") {
		if idx := strings.Index(response, "{"); idx != -1 {
			response = response[idx:]
		}
	}
	if !strings.HasSuffix(response, "}") {
		if idx := strings.LastIndex(response, "}"); idx != -1 {
			response = response[:idx+1]
		}
	}

	return strings.TrimSpace(response)
}

// Package wellness 实现各健康工具的闭式计算：BMI、基础代谢、腰臀比等。
// 公式与分档阈值是固定契约，改动会影响已有用户看到的结果。
package wellness

import (
	"fmt"
	"math"
)

// BMIResult BMI 计算结果
type BMIResult struct {
	BMI      float64 // 保留 1 位小数
	Category string
}

// CalcBMI 体质指数：体重(kg) / 身高(m)^2
func CalcBMI(heightCm, weightKg float64) (BMIResult, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return BMIResult{}, fmt.Errorf("身高和体重必须为正数")
	}

	h := heightCm / 100
	bmi := round1(weightKg / (h * h))

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25:
		category = "Normal weight"
	case bmi < 30:
		category = "Overweight"
	default:
		category = "Obesity"
	}

	return BMIResult{BMI: bmi, Category: category}, nil
}

// ActivityFactors 活动系数表（TDEE = BMR × 系数）
var ActivityFactors = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
	"extra":     1.9,
}

// BMRResult 基础代谢计算结果
type BMRResult struct {
	BMR  int // Mifflin-St Jeor，四舍五入到整数
	TDEE int // 按先取整的 BMR 乘以活动系数再取整
}

// CalcBMR Mifflin-St Jeor 公式。gender 取 male/female。
// 先把 BMR 取整，再乘活动系数取整得到 TDEE（与线上行为一致，勿改顺序）。
func CalcBMR(gender string, age int, heightCm, weightKg float64, activityLevel string) (BMRResult, error) {
	if age <= 0 || heightCm <= 0 || weightKg <= 0 {
		return BMRResult{}, fmt.Errorf("年龄、身高、体重必须为正数")
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case "male":
		base += 5
	case "female":
		base -= 161
	default:
		return BMRResult{}, fmt.Errorf("gender 必须为 male 或 female")
	}

	factor, ok := ActivityFactors[activityLevel]
	if !ok {
		return BMRResult{}, fmt.Errorf("未知的活动水平: %s", activityLevel)
	}

	bmr := int(math.Round(base))
	tdee := int(math.Round(float64(bmr) * factor))
	return BMRResult{BMR: bmr, TDEE: tdee}, nil
}

// WHRResult 腰臀比计算结果
type WHRResult struct {
	WHR      float64 // 保留 2 位小数
	Category string
}

// CalcWHR 腰臀比：腰围 / 臀围。风险分档男女阈值不同。
func CalcWHR(gender string, waistCm, hipCm float64) (WHRResult, error) {
	if waistCm <= 0 || hipCm <= 0 {
		return WHRResult{}, fmt.Errorf("腰围和臀围必须为正数")
	}

	whr := round2(waistCm / hipCm)

	var category string
	switch gender {
	case "male":
		switch {
		case whr < 0.90:
			category = "Low Risk"
		case whr < 1.0:
			category = "Moderate Risk"
		default:
			category = "High Risk"
		}
	case "female":
		switch {
		case whr < 0.80:
			category = "Low Risk"
		case whr < 0.86:
			category = "Moderate Risk"
		default:
			category = "High Risk"
		}
	default:
		return WHRResult{}, fmt.Errorf("gender 必须为 male 或 female")
	}

	return WHRResult{WHR: whr, Category: category}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

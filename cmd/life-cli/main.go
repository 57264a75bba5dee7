package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuqie6/lifemirror/internal/bootstrap"
)

var (
	cfgFile string
	core    *bootstrap.Core
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "life",
		Short: "LifeMirror - 本地优先的个人健康活动账本",
		Long:  `LifeMirror 在本地记录健康工具的使用、测验与各类日志，并生成统计与仪表盘。所有数据只存在本机。`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			core, err = bootstrap.NewCore(cfgFile)
			if err != nil {
				slog.Error("初始化失败", "error", err)
				os.Exit(1)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if core != nil {
				_ = core.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径")

	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(journalCmd())
	rootCmd.AddCommand(hydrationCmd())
	rootCmd.AddCommand(adviseCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// statsCmd 账本统计
func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "查看活动统计",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			stats := core.Services.Tracker.Stats(ctx)

			fmt.Println("📊 活动统计")
			fmt.Println("═══════════════════════════════════════")
			fmt.Printf("  • 工具使用: %d 次（%d 种工具）\n", stats.TotalCalculatorUses, stats.UniqueCalculatorsUsed)
			fmt.Printf("  • 计分测验: %d 次\n", stats.TotalQuizAttempts)
			fmt.Printf("  • 体质问卷: %d 次\n", stats.PrakritiQuizCompletions)
			fmt.Printf("  • 养生建议: %d 次\n", stats.WellnessPlanGenerations)
			fmt.Printf("  • 五鞘顾问: %d 次\n", stats.KoshaAdvisorUsages)
			if stats.LastActivityDate != "" {
				fmt.Printf("  • 最近活动: %s\n", stats.LastActivityDate)
			}
		},
	}
}

// dashboardCmd 仪表盘卡片
func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "查看仪表盘",
		Run: func(cmd *cobra.Command, args []string) {
			cards := core.Services.Dashboard.Cards(context.Background())

			fmt.Println("🏠 今日仪表盘")
			fmt.Println("═══════════════════════════════════════")
			for _, card := range cards {
				fmt.Printf("  %-12s %s\n", card.Label, card.Value)
			}
		},
	}
}

// journalCmd 日志增删查
func journalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "管理各类日志",
	}

	listCmd := &cobra.Command{
		Use:   "list <feature>",
		Short: "列出某类日志（新的在前）",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			entries, err := core.Services.Journals.List(context.Background(), args[0])
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				fmt.Printf("   可用的日志: %s\n", strings.Join(core.Services.Journals.Features(), ", "))
				os.Exit(1)
			}
			b, _ := json.MarshalIndent(entries, "", "  ")
			fmt.Println(string(b))
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <feature> <json>",
		Short: "追加一条日志，负载为 JSON",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			entry, err := core.Services.Journals.Append(context.Background(), args[0], json.RawMessage(args[1]))
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				os.Exit(1)
			}
			b, _ := json.MarshalIndent(entry, "", "  ")
			fmt.Println("✅ 已记录")
			fmt.Println(string(b))
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <feature> <id>",
		Short: "按 id 删除一条日志",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			removed, err := core.Services.Journals.Remove(context.Background(), args[0], args[1])
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				os.Exit(1)
			}
			if removed {
				fmt.Println("✅ 已删除")
			} else {
				fmt.Println("⚠️  没有找到这条记录")
			}
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear <feature>",
		Short: "清空某类日志",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := core.Services.Journals.Clear(context.Background(), args[0]); err != nil {
				fmt.Printf("❌ %v\n", err)
				os.Exit(1)
			}
			fmt.Println("✅ 已清空")
		},
	}

	cmd.AddCommand(listCmd, addCmd, rmCmd, clearCmd)
	return cmd
}

// hydrationCmd 当日饮水
func hydrationCmd() *cobra.Command {
	var drink bool
	var goal int

	cmd := &cobra.Command{
		Use:   "hydration",
		Short: "查看或打卡当日饮水",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			journals := core.Services.Journals

			if goal > 0 {
				if _, err := journals.SetHydrationGoal(ctx, goal); err != nil {
					fmt.Printf("❌ %v\n", err)
					os.Exit(1)
				}
			}
			if drink {
				if _, err := journals.Drink(ctx); err != nil {
					fmt.Printf("❌ %v\n", err)
					os.Exit(1)
				}
			}

			status := journals.TodayHydration(ctx)
			fmt.Printf("💧 今日饮水: %d / %d 杯\n", status.Intake, status.Goal)
		},
	}

	cmd.Flags().BoolVar(&drink, "drink", false, "饮水 +1 杯")
	cmd.Flags().IntVar(&goal, "goal", 0, "设置当日目标杯数")
	return cmd
}

// adviseCmd AI 养生建议
func adviseCmd() *cobra.Command {
	var symptoms string
	var prakriti string
	var concerns string

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "获取 AI 养生建议",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if err := core.RequireAIConfigured(); err != nil {
				fmt.Println("⚠️  DeepSeek API Key 未配置")
				fmt.Println("   请设置环境变量: DEEPSEEK_API_KEY")
				fmt.Println("   或在 config.yaml 中配置")
				os.Exit(1)
			}

			switch {
			case prakriti != "":
				plan, err := core.Services.Advisor.GenerateKoshaPlan(ctx, prakriti, concerns)
				if err != nil {
					fmt.Printf("❌ 生成失败: %v\n", err)
					os.Exit(1)
				}
				fmt.Printf("🧘 %s 体质五鞘调理方案\n", prakriti)
				fmt.Println("═══════════════════════════════════════")
				fmt.Printf("\n🍽  饮食\n%s\n", plan.Diet)
				fmt.Printf("\n🌿 起居\n%s\n", plan.Lifestyle)
				fmt.Printf("\n🤸 瑜伽\n%s\n", plan.Yoga)
				fmt.Printf("\n🧘 冥想\n%s\n", plan.Meditation)
				fmt.Printf("\n⚠️  %s\n", plan.Disclaimer)
			case symptoms != "":
				rec, err := core.Services.Advisor.RecommendForSymptoms(ctx, symptoms)
				if err != nil {
					fmt.Printf("❌ 生成失败: %v\n", err)
					os.Exit(1)
				}
				fmt.Println("🌿 养生建议")
				fmt.Println("═══════════════════════════════════════")
				fmt.Println(rec.Recommendations)
			default:
				fmt.Println("请提供 --symptoms 或 --prakriti")
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&symptoms, "symptoms", "", "症状描述")
	cmd.Flags().StringVar(&prakriti, "prakriti", "", "体质类型 (vata/pitta/kapha 或组合)")
	cmd.Flags().StringVar(&concerns, "concerns", "", "当前困扰（配合 --prakriti）")
	return cmd
}

// validate_config 检查玩法配置文件是否合法，并打印与默认值不同的字段
//
// 用法：
//
//	go run ./tools [data/orbsurge.yaml]
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/orbsurge/pkg/config"
)

func main() {
	path := config.DefaultGameConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 格式正确\n", path)

	// 通过 YAML 往返比较，逐个顶层分组打印差异
	got, err := toSections(cfg)
	if err != nil {
		fmt.Printf("❌ 序列化失败: %v\n", err)
		os.Exit(1)
	}
	defaults, err := toSections(config.DefaultGameConfig())
	if err != nil {
		fmt.Printf("❌ 序列化失败: %v\n", err)
		os.Exit(1)
	}

	diffs := 0
	for section, fields := range got {
		for key, value := range fields {
			if want := defaults[section][key]; fmt.Sprint(want) != fmt.Sprint(value) {
				fmt.Printf("  %s.%s: %v (默认 %v)\n", section, key, value, want)
				diffs++
			}
		}
	}

	if diffs == 0 {
		fmt.Printf("✅ 所有字段与默认值一致\n")
	} else {
		fmt.Printf("ℹ️  %d 个字段与默认值不同\n", diffs)
	}
}

func toSections(cfg *config.GameConfig) (map[string]map[string]interface{}, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	sections := make(map[string]map[string]interface{})
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

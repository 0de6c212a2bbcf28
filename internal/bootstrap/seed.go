package bootstrap

import (
	_ "embed"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"issuer/internal/model"
	"issuer/internal/repository"
	pkgErrors "issuer/pkg/errors"
)

//go:embed metas.yaml
var metasSeed []byte

type seedDocument struct {
	Metas []struct {
		MetaType string `yaml:"meta_type"`
		Values   []struct {
			Value string `yaml:"value"`
			Note  string `yaml:"note"`
		} `yaml:"values"`
	} `yaml:"metas"`
}

// SeedMetas 按内置种子补齐枚举字典，幂等，已有值不重复写入
func SeedMetas(repo repository.MetasRepository) error {
	var doc seedDocument
	if err := yaml.Unmarshal(metasSeed, &doc); err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "解析枚举种子失败", err)
	}

	for _, group := range doc.Metas {
		existing, err := repo.ListByType(group.MetaType)
		if err != nil {
			return err
		}
		present := lo.Map(existing, func(meta *model.Metas, _ int) string {
			return meta.MetaValue
		})

		for _, item := range group.Values {
			if lo.Contains(present, item.Value) {
				continue
			}
			note := item.Note
			meta := &model.Metas{
				MetaType:  group.MetaType,
				MetaValue: item.Value,
				Note:      &note,
			}
			if err := repo.Insert(meta); err != nil {
				return err
			}
		}
	}
	return nil
}

package production

import "github.com/kardelen/uretim-api/internal/domain/entity"

// stageEditors (aşama -> rol) yetki tablosu. Aşama düzenleme, depo girişi ve
// sevkiyat servislerinin tamamı bu tek tablodan okur; çağıran başına dağınık
// rol kontrolü yapılmaz.
var stageEditors = map[entity.Stage]map[string]bool{
	entity.StageFoam: {
		entity.RoleAdmin: true, entity.RolePlanlama: true, entity.RolePazarlama: true,
		entity.RoleUretim: true, entity.RoleMuhendis: true,
	},
	entity.StageUpholstery: {
		entity.RoleAdmin: true, entity.RolePlanlama: true, entity.RolePazarlama: true,
		entity.RoleUretim: true, entity.RoleMuhendis: true,
	},
	entity.StageAssembly: {
		entity.RoleAdmin: true, entity.RolePlanlama: true, entity.RolePazarlama: true,
		entity.RoleUretim: true, entity.RoleMuhendis: true,
	},
	entity.StagePackaged: {
		entity.RoleAdmin: true, entity.RolePlanlama: true, entity.RolePazarlama: true,
		entity.RoleUretim: true, entity.RoleMuhendis: true,
	},
	// stored ve shipped aşama düzenlemesine kapalıdır; bu satırlar depo girişi
	// ve sevkiyat servislerinin rol kontrolünü besler.
	entity.StageStored: {
		entity.RoleAdmin: true, entity.RoleDepo: true,
	},
	entity.StageShipped: {
		entity.RoleAdmin: true, entity.RoleSevkiyat: true,
	},
}

// CanEditStage rolün ilgili aşamanın sayacını oynatıp oynatamayacağını döner.
func CanEditStage(role string, st entity.Stage) bool {
	return stageEditors[st][role]
}

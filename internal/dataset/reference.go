package dataset

import "github.com/Veraticus/taxref/internal/model"

var feeCategories = []model.FeeCategory{
	{Code: "98", Description: "非自行出版之稿費、版稅、樂譜、作曲、編劇、漫畫及演講之鐘點費等七項"},
	{Code: "99", Description: "自行出版之稿費、版稅、作曲、編劇、漫畫等"},
}

var detailedIncomeItems = []model.DetailedIncomeItem{
	{ID: 1, Name: "口譯費(非屬演講性質)", Code: "50", FormatCode: "50", FeeCode: "63"},
	{ID: 2, Name: "口譯費(屬演講性質)", Code: "9B", FormatCode: "9B", FeeCode: "98"},
	{ID: 3, Name: "子女教育補助費", Code: "50", FormatCode: "50", FeeCode: "63", HealthInsurance: true},
	{ID: 4, Name: "小兒科醫師", Code: "9A", FormatCode: "9A", FeeCode: "32"},
	{ID: 5, Name: "工匠(含工資及材料)", Code: "9A", FormatCode: "9A", FeeCode: "25", Notes: "藝術，不以執行業務所得投保"},
}

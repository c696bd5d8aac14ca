package dataset

import "github.com/Veraticus/taxref/internal/model"

var professional = model.TaxRate{Resident: "10%", NonResident: "20%"}

var occupationCategories = []model.OccupationCategory{
	{Code: "10", Name: "律師", TaxRate: professional, Category: "法律專業"},
	{Code: "11", Name: "會計師", TaxRate: professional, Category: "會計專業"},
	{Code: "12", Name: "精算師", TaxRate: professional, Category: "金融專業"},
	{Code: "13", Name: "地政士", TaxRate: professional, Category: "地政專業"},
	{Code: "14", Name: "記帳士", TaxRate: professional, Category: "會計專業"},
	{Code: "15", Name: "仲裁人", TaxRate: professional, Category: "法律專業"},
	{Code: "16", Name: "民間公證人", TaxRate: professional, Category: "法律專業"},
	{Code: "17", Name: "不動產估價師", TaxRate: professional, Category: "不動產專業"},
	{Code: "18", Name: "受委託代辦國有非公用不動產之承租、續租、過戶及繼承等申請者", TaxRate: professional, Category: "不動產專業"},
	{Code: "19", Name: "記帳及報稅代理業務人", TaxRate: professional, Category: "會計專業"},
	{Code: "20", Name: "技師", TaxRate: professional, Category: "工程專業"},
	{Code: "21", Name: "建築師", TaxRate: professional, Category: "建築專業"},
	{Code: "22", Name: "公共安檢人員", TaxRate: professional, Category: "安全檢查"},
	{Code: "23", Name: "未具會計師資格，辦理工商登記等業務者", TaxRate: professional, Category: "商業服務"},
	{Code: "24", Name: "工匠(工資收入)", TaxRate: professional, Category: "技藝工作", Description: "不以執行業務所得投保"},
	{Code: "25", Name: "工匠(工料收入)", TaxRate: professional, Category: "技藝工作", Description: "不以執行業務所得投保"},
	{Code: "26", Name: "引水人", TaxRate: professional, Category: "航運服務"},
	{Code: "29", Name: "美術工藝家(工料收入)", TaxRate: professional, Category: "藝術創作"},
	{Code: "30", Name: "內科醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "31", Name: "外科醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "32", Name: "小兒科醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "33", Name: "婦產科醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "34", Name: "眼科醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "35", Name: "耳鼻喉科醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "36", Name: "牙科醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "37", Name: "精神科醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "38", Name: "骨科醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "39", Name: "其他科別醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "40", Name: "助產師(士)", TaxRate: professional, Category: "醫療專業"},
	{Code: "41", Name: "藥師", TaxRate: professional, Category: "醫療專業"},
	{Code: "42", Name: "醫事檢驗師(生)", TaxRate: professional, Category: "醫療專業"},
	{Code: "43", Name: "整合照護", TaxRate: professional, Category: "醫療專業"},
	{Code: "44", Name: "駐診拆帳西醫", TaxRate: professional, Category: "醫療專業"},
	{Code: "45", Name: "營養師", TaxRate: professional, Category: "醫療專業"},
	{Code: "46", Name: "醫師經核准至該他醫療機構服務但與該他醫療機構不具僱傭關係者", TaxRate: professional, Category: "醫療專業"},
	{Code: "47", Name: "獸醫師", TaxRate: professional, Category: "獸醫專業"},
	{Code: "48", Name: "皮膚科醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "49", Name: "家庭醫學科醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "50", Name: "中醫師", TaxRate: professional, Category: "醫療專業"},
	{Code: "51", Name: "語言治療師", TaxRate: professional, Category: "醫療專業"},
	{Code: "52", Name: "人壽保險醫療檢查", TaxRate: professional, Category: "保險服務"},
	{Code: "53", Name: "物理治療師", TaxRate: professional, Category: "醫療專業"},
	{Code: "54", Name: "職能治療師", TaxRate: professional, Category: "醫療專業"},
	{Code: "55", Name: "心理師", TaxRate: professional, Category: "醫療專業"},
	{Code: "56", Name: "牙體技術師(生)", TaxRate: professional, Category: "醫療專業"},
	{Code: "57", Name: "配合政府政策辦理老人、兒童、中低收入者、身心障礙者及其他特定對象補助", TaxRate: professional, Category: "社會服務"},
	{Code: "58", Name: "自費疫苗注射收入", TaxRate: professional, Category: "醫療專業"},
	{Code: "61", Name: "書畫家、版畫家", TaxRate: professional, Category: "藝術創作"},
	{Code: "62", Name: "命理卜卦", TaxRate: professional, Category: "民俗服務"},
	{Code: "70", Name: "表演人", TaxRate: professional, Category: "表演藝術"},
	{Code: "71", Name: "保險經紀人", TaxRate: professional, Category: "保險服務"},
	{Code: "72", Name: "節目製作人", TaxRate: professional, Category: "媒體製作"},
	{Code: "73", Name: "公益彩券甲類經銷商", TaxRate: professional, Category: "彩券銷售"},
	{Code: "76", Name: "一般經紀人", TaxRate: professional, Category: "經紀服務"},
	{Code: "90", Name: "其他", TaxRate: professional, Category: "其他專業"},
	{Code: "91", Name: "商標代理人", TaxRate: professional, Category: "智慧財產"},
	{Code: "92", Name: "程式設計師", TaxRate: professional, Category: "資訊技術"},
	{Code: "93", Name: "專利師及專利代理人", TaxRate: professional, Category: "智慧財產"},
	{Code: "94", Name: "未具律師資格，辦理訴訟代理人業務", TaxRate: professional, Category: "法律服務"},
	{Code: "95", Name: "未具建築師資格，辦理建築規劃設計及監造等業務者", TaxRate: professional, Category: "建築服務"},
	{Code: "96", Name: "未具地政士資格，辦理土地登記等業務者", TaxRate: professional, Category: "地政服務"},
	{Code: "97", Name: "受大陸地區人民委託辦理繼承、公法給付或其他事務者", TaxRate: professional, Category: "跨境服務"},
}

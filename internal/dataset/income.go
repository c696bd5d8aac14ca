package dataset

import "github.com/Veraticus/taxref/internal/model"

var incomeCategories = []model.IncomeCategory{
	{
		Code: "0",
		Name: "免列所得",
		TaxRate: model.TaxRate{
			Resident:    "免稅",
			NonResident: "免稅",
		},
		Description: "不需列入所得計算的項目",
		Examples: []string{
			"導師費、主管加給(編制內主管)",
			"入學考試試務人員各種工作費、命題、閱卷費",
			"論文考試口試費、車馬費",
			"公務員之福利互助金",
			"執行職務差旅費、日支費、加班費(不超過規定標準)",
			"退休人員三節慰問金",
			"死亡員工之喪葬補助費",
			"成績排名之獎學金、僑生公費、運動比賽優異獎助學金",
			"清寒優秀學生獎學金(以成績為條件者)",
			"教育部及各單位來文表示其補助為免稅項目",
		},
		Notes: "依勞動基準法第24條規定「延長工作時間之工資」及第32條規定「每月平日延長工作總時數」限度內支領之加班費，可免納所得稅",
	},
	{
		Code:       "50",
		Name:       "薪資所得",
		FormatCode: "50",
		TaxRate: model.TaxRate{
			Resident:    "固定薪資：按薪資所得扣繳稅額表扣繳 / 非固定薪資：5% (起扣標準88,501元)",
			NonResident: "基本工資1.5倍以下(41,205元)：6% / 超過基本工資1.5倍：18%",
		},
		Description:          "包含酬勞、工資、工作酬勞、助理薪資、兼職酬金、工作所得、助理費、人事費、工讀費等",
		HealthInsuranceCode:  "62/63",
		HealthInsuranceName:  "獎金/兼職所得",
		WithholdingThreshold: "88,501元",
		Examples: []string{
			"薪資：包含酬勞、工資、工作酬勞、助理薪資、兼職酬金、工作所得、助理費、人事費、工讀費、工讀助學金、工作費、臨時工資、各類津貼、年終獎金、考績獎金、調薪差額、晉級差額等",
			"授課鐘點費：包含學校開課、訓練班、講習會等排定課程發給之鐘點費",
			"科技部等撥付研究生獎助學金",
			"各機關、單位委託專案研究補助費",
			"公務員之各種補助費收入",
			"研究費（無研究計畫及定期定額給付）",
			"結婚、眷喪、生育、子女教育、健康檢查、休假旅遊補助費",
			"諮詢費、實驗受測費、問卷調查費、訪談費、輔導費、出席費、主持費、講座費、講評費、論文發表費、一般審查費（專案研究報告及著作等審查）、教材編輯費、打字費、資料蒐集費、清潔費、口語翻譯費",
		},
		Notes: "授課鐘點費與講演鐘點費需區分：授課鐘點費屬薪資所得，講演鐘點費屬執行業務所得",
	},
	{
		Code:       "9A",
		Name:       "執行業務所得",
		FormatCode: "9A",
		TaxRate: model.TaxRate{
			Resident:    "10% (扣繳稅額不超過2,000元免予扣繳)",
			NonResident: "20% (無論金額大小)",
		},
		Description:          "律師、會計師、建築師、技師、醫師、藥師、著作人、代書、工匠和表演人及其他以技藝自力營生者的業務收入或演技收入",
		HealthInsuranceCode:  "65",
		HealthInsuranceName:  "執行業務收入",
		WithholdingThreshold: "20,010元",
		Examples: []string{
			"律師、會計師、醫師、建築師、技師、藥師、地政士、記帳士、專利代理人等（須取有證書或執照），及其事務所、診所、醫院",
			"專業表演人（演員、歌手、模特兒、節目主持人、舞者、相聲、魔術、特技、樂器等）、書畫家、著作人、漫畫家、編劇者等",
		},
		Notes: "上述人員如係採聘僱方式任用，則其報酬應屬薪資，而非執行業務",
	},
	{
		Code:       "9B",
		Name:       "執行業務所得稿費、演講費等",
		FormatCode: "9B",
		TaxRate: model.TaxRate{
			Resident:    "10% (扣繳稅額不超過2,000元免予扣繳)",
			NonResident: "20% (每次給付金額不超過5,000元免予扣繳)",
		},
		Description:          "稿費、演講費、演講鐘點費等，定額免稅18萬元",
		HealthInsuranceCode:  "65",
		HealthInsuranceName:  "執行業務收入",
		FeeCategory:          "98/99",
		ExemptionLimit:       "18萬元",
		WithholdingThreshold: "20,010元",
		Examples: []string{
			"專題演講鐘點費：於公眾集會場所且無固定場所、時間、對象之演講(不特定人士參與)",
			"稿費、編撰費、翻譯費（非僱用關係自由投稿並經出版或刊登報章雜誌之期刊、學刊等；含翻譯、改稿、審查、審訂等）",
			"論文指導費、口試費",
			"審查費(專任教師升等著作、期刊、學報、畢業論文等)、系所評鑑品保報告審查",
			"版稅(非自行出版9B98、自行出版9B99)",
		},
		Notes: "稿費係以本人著作、翻譯、創作之文稿，並按字計酬。與稿費、版稅、樂譜、作曲、編劇、漫畫等全年合計數不超過新台幣18萬元者，免納所得稅",
	},
	{
		Code:       "51",
		Name:       "租賃所得",
		FormatCode: "51",
		TaxRate: model.TaxRate{
			Resident:    "10% (扣繳稅額不超過2,000元免予扣繳)",
			NonResident: "20% (無論金額大小)",
		},
		Description:          "租賃房屋、土地、車位等收入",
		HealthInsuranceCode:  "68",
		HealthInsuranceName:  "租金",
		WithholdingThreshold: "20,010元",
		Examples: []string{
			"租賃房屋、土地、車位",
			"借用場地所付的使用費、清理費",
		},
		Notes: "取得統一發票者，免扣繳。場地租金需提供房屋稅籍編號及土地地段地號",
	},
	{
		Code:       "53",
		Name:       "權利金",
		FormatCode: "53",
		TaxRate: model.TaxRate{
			Resident:    "10% (扣繳稅額不超過2,000元免予扣繳)",
			NonResident: "20% (無論金額大小)",
		},
		Description:          "專利權、商標權、著作權供他人使用而取得之權利金所得",
		WithholdingThreshold: "20,010元",
		Examples: []string{
			"專利權（技轉金）",
			"商標權使用費",
			"著作權授權費",
		},
	},
	{
		Code:       "91",
		Name:       "競技競賽及機會中獎之獎金",
		FormatCode: "91",
		TaxRate: model.TaxRate{
			Resident:    "10% (扣繳稅額不超過2,000元免予扣繳)",
			NonResident: "20% (無論金額大小)",
		},
		Description:          "各項比賽獎金、抽獎獎金及獎品價值",
		WithholdingThreshold: "20,010元",
		Examples: []string{
			"各項比賽獎金（實物依購買成本認列）",
			"活動摸彩、年終尾牙摸彩之獎金或獎品",
			"各類競技比賽及抽獎之獎金及獎品價值",
		},
		Notes: "版權歸公改列【9B】。參加活動送的小獎品是贈品不列所得(人人有獎)",
	},
	{
		Code:       "92",
		Name:       "其他所得",
		FormatCode: "92",
		TaxRate: model.TaxRate{
			Resident:    "免扣繳（應列單）",
			NonResident: "20%",
		},
		Description: "不屬於其他類別之所得",
		Examples: []string{
			"表演團體、劇團、急難救助金（無統一發票者）",
			"財團法人醫療院所之醫療費用",
			"特殊優良教師獎金、資深優良教師獎勵金、模範公務人員及傑出貢獻獎之獎金",
			"技術移轉分配有功獎勵金",
			"各類研討會報名費及註冊費(入會費、年費免列)、教育訓練費等",
		},
	},
	{
		Code:       "93",
		Name:       "退職所得",
		FormatCode: "93",
		TaxRate: model.TaxRate{
			Resident:    "6%",
			NonResident: "18%",
		},
		Description: "退休金、資遣費、退職金、離職金、終身俸及非屬保險給付之養老金等所得",
		Examples: []string{
			"凡個人領取之退休金、資遣費、退職金、離職金、終身俸及非屬保險給付之養老金等所得",
			"分期領取退職所得之退休公務人員所領之年終慰問金及子女教育補助",
		},
		Notes: "個人領取歷年自薪資所得中自行繳付儲金之部分及其孳息，不在此限。退職所得有定額免稅標準",
	},
	{
		Code:       "95",
		Name:       "政府補助款",
		FormatCode: "95A/95B",
		TaxRate: model.TaxRate{
			Resident:    "免扣繳（應列單）",
			NonResident: "免扣繳（應列單）",
		},
		Description: "政府補助款分為實報實銷(95A)和非實報實銷(95B)",
		Examples: []string{
			"政府補助款(非實報實銷) 95B",
			"政府補助款(實報實銷) 95A",
		},
	},
}

package aggregate

// Pivot reshaper: chuyển kết quả gom theo giờ thành map lồng nhau
// đúng shape frontend cần. Mọi outer key có mặt trong dữ liệu đều có đủ
// 15 inner key của cửa sổ hiển thị, kể cả tổ hợp không có bản ghi nào.

// MOHourPivot là pivot moNo -> giờ, kèm dòng tổng theo giờ và tổng chung
type MOHourPivot struct {
	ByMO         map[string]map[string]*HourCell `json:"byMO"`
	TotalsByHour map[string]*HourCell            `json:"totalsByHour"`
	Grand        *HourCell                       `json:"grand"`
}

// DefectRatesByMOHour gom các bản ghi khớp filter theo (moNo, giờ),
// densify từng moNo, và tính dòng tổng theo giờ lẫn tổng chung qua
// HourlyTotals. Bản ghi có inspectionTime không hợp lệ bị loại khỏi toàn bộ
// breakdown, kể cả khỏi tổng chung. Dòng tổng chỉ chứa 15 nhãn của cửa sổ
// hiển thị; map theo moNo giữ cả nhãn ngoài cửa sổ nếu dữ liệu có.
func DefectRatesByMOHour(records []InspectionRecord, c Criteria) *MOHourPivot {
	pred := c.Predicate()

	moAccums := map[string]map[string]*hourAccum{}

	for i := range records {
		r := &records[i]
		if !pred(r) {
			continue
		}
		hour, ok := ParseClock(r.InspectionTime)
		if !ok {
			continue
		}
		label := HourLabel(hour)

		hours, exists := moAccums[r.MONo]
		if !exists {
			hours = map[string]*hourAccum{}
			moAccums[r.MONo] = hours
		}
		accum, exists := hours[label]
		if !exists {
			accum = newHourAccum()
			hours[label] = accum
		}
		accum.add(r)
	}

	byMO := map[string]map[string]*HourCell{}
	for moNo, hours := range moAccums {
		cells := map[string]*HourCell{}
		for label, accum := range hours {
			cells[label] = accum.cell()
		}
		byMO[moNo] = Densify(cells)
	}

	totals, grand := HourlyTotals(records, c)

	return &MOHourPivot{
		ByMO:         byMO,
		TotalsByHour: totals,
		Grand:        grand,
	}
}

// LineHourPivot là pivot lineNo -> moNo -> giờ, với totalRate ở từng mức
type LineHourPivot struct {
	ByLine    map[string]map[string]map[string]*HourCell `json:"byLine"`
	LineRates map[string]float64                         `json:"lineRates"`
	MORates   map[string]map[string]float64              `json:"moRates"`
	Grand     *HourCell                                  `json:"grand"`
}

// DefectRatesByLineHour gom các bản ghi khớp filter theo (lineNo, moNo, giờ),
// densify từng tổ hợp line+mo, và tính tỷ lệ tổng ở mức line, mức line+mo
// và tổng chung.
func DefectRatesByLineHour(records []InspectionRecord, c Criteria) *LineHourPivot {
	pred := c.Predicate()

	lineAccums := map[string]map[string]map[string]*hourAccum{}
	lineTotals := map[string]*hourAccum{}
	moTotals := map[string]map[string]*hourAccum{}
	grand := newHourAccum()

	for i := range records {
		r := &records[i]
		if !pred(r) {
			continue
		}
		hour, ok := ParseClock(r.InspectionTime)
		if !ok {
			continue
		}
		label := HourLabel(hour)

		mos, exists := lineAccums[r.LineNo]
		if !exists {
			mos = map[string]map[string]*hourAccum{}
			lineAccums[r.LineNo] = mos
		}
		hours, exists := mos[r.MONo]
		if !exists {
			hours = map[string]*hourAccum{}
			mos[r.MONo] = hours
		}
		accum, exists := hours[label]
		if !exists {
			accum = newHourAccum()
			hours[label] = accum
		}
		accum.add(r)

		lineTotal, exists := lineTotals[r.LineNo]
		if !exists {
			lineTotal = newHourAccum()
			lineTotals[r.LineNo] = lineTotal
		}
		lineTotal.add(r)

		lineMos, exists := moTotals[r.LineNo]
		if !exists {
			lineMos = map[string]*hourAccum{}
			moTotals[r.LineNo] = lineMos
		}
		moTotal, exists := lineMos[r.MONo]
		if !exists {
			moTotal = newHourAccum()
			lineMos[r.MONo] = moTotal
		}
		moTotal.add(r)

		grand.add(r)
	}

	byLine := map[string]map[string]map[string]*HourCell{}
	for lineNo, mos := range lineAccums {
		lineOut := map[string]map[string]*HourCell{}
		for moNo, hours := range mos {
			cells := map[string]*HourCell{}
			for label, accum := range hours {
				cells[label] = accum.cell()
			}
			lineOut[moNo] = Densify(cells)
		}
		byLine[lineNo] = lineOut
	}

	lineRates := map[string]float64{}
	for lineNo, accum := range lineTotals {
		lineRates[lineNo] = safeDiv(accum.defectQty, accum.checkedQty) * 100
	}

	moRates := map[string]map[string]float64{}
	for lineNo, mos := range moTotals {
		rates := map[string]float64{}
		for moNo, accum := range mos {
			rates[moNo] = safeDiv(accum.defectQty, accum.checkedQty) * 100
		}
		moRates[lineNo] = rates
	}

	return &LineHourPivot{
		ByLine:    byLine,
		LineRates: lineRates,
		MORates:   moRates,
		Grand:     grand.cell(),
	}
}

package interfaces

import recap "logistics-cloud/internal/recap/domain"

// sumShapedRows re-sums the already-shaped numeric values. The exporters
// have no access to source records, so this is the only way a totals row
// can be produced and both artifacts agree by construction.
func sumShapedRows(rows []recap.ShapedRow) (outlay, billed, margin float64, masked bool) {
	for _, row := range rows {
		if row.Masked {
			masked = true
			continue
		}
		outlay += row.OutlayValue
		billed += row.BilledValue
		margin += row.MarginValue
	}
	return outlay, billed, margin, masked
}

// totalsCells formats the three monetary totals, masked when the rows were
// shaped under an operations projection.
func totalsCells(outlay, billed, margin float64, masked bool) [3]string {
	if masked {
		return [3]string{"-", "-", "-"}
	}
	return [3]string{
		recap.FormatRupiah(outlay),
		recap.FormatRupiah(billed),
		recap.FormatRupiah(margin),
	}
}

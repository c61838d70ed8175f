package timedataset

import "time"

const (
	SeasonLen    = 12
	TrainSeasons = 4
	TestSeasons  = 1

	TrainLen = SeasonLen * TrainSeasons
	TestLen  = SeasonLen * TestSeasons
)

// monthly sales totals across stores, five full years
var sales = [SeasonLen * (TrainSeasons + TestSeasons)]float64{
	953.0, 1018.0, 1295.0, 1448.0, 1584.0, 1792.0, 1837.0, 1608.0, 1491.0, 1357.0, 1381.0, 1078.0,
	1138.0, 1095.0, 1375.0, 1630.0, 1837.0, 1865.0, 2085.0, 1919.0, 1674.0, 1609.0, 1721.0, 1250.0,
	1180.0, 1232.0, 1544.0, 1787.0, 1959.0, 2053.0, 2250.0, 1932.0, 1775.0, 1743.0, 1688.0, 1246.0,
	1341.0, 1301.0, 1677.0, 1894.0, 2065.0, 2098.0, 2466.0, 2125.0, 1936.0, 1803.0, 1837.0, 1390.0,
	1356.0, 1347.0, 1765.0, 1986.0, 2096.0, 2191.0, 2555.0, 2253.0, 2071.0, 1885.0, 2024.0, 1470.0,
}

var salesStart = time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)

// Sales returns a fresh copy of the embedded monthly sales dataset
func Sales() *TimeDataset {
	t := GenerateMonthlyT(len(sales), salesStart)
	y := make([]float64, len(sales))
	copy(y, sales[:])
	return &TimeDataset{T: t, Y: y}
}

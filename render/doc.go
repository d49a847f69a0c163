// Package render draws a pipeline report as PNG plots with gonum/plot.
//
// Plotter writes, into its directory:
//
//	irradiance_regression.png       samples and the polynomial regression
//	<metric>_vs_index.png           metric over grid index, maximum marked
//	<metric>_fitment[_k].png        LHE of each optimum with the irradiance
//
// File names are snake_case forms of the plot titles.
package render

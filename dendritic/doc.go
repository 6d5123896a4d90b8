// Package dendritic provides the bundled reference datasets describing how the
// dendritic properties vary with the distance from the soma.
//
// Two datasets are available: the inter spike interval coefficient of variation
// (ISI_CV) and the spike rheobase. Rheobase values are stored in pA and returned in nA.
package dendritic

// Package famrisk estimates how often relatives of affected probands have the
// familial form of a disease, and how likely a given pedigree is to be
// segregating familial rather than sporadic disease.
//
// A pedigree is summarized by two counts: the number of affected relatives
// and the number of relatives whose status is known. EstimatePenetrance fits
// the familial per-relative risk to a sample of pedigrees that was
// ascertained by a minimum number of affected relatives, and
// SegregationProbabilities uses that risk, the sporadic risk and a prior to
// score a single pedigree.
//
// Everything here is a pure function of its arguments and is safe for
// concurrent use.
package famrisk

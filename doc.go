// Package rvine builds Regular Vine (R-Vine) dependence models from paired,
// rank-normalized observations.
//
// An R-Vine decomposes a multivariate dependence structure into a sequence of
// trees. Every tree edge carries a bivariate pair-copula fitted to the
// (conditional) pseudo-observations of its two endpoints.
//
// Under the hood, everything is organized under five subpackages:
//
//	numeric/  : composite Simpson quadrature, bounded bisection inversion,
//	            bounded golden-section maximization, boundary clamp, seeded RNG streams
//	rank/     : tie-corrected rank normalization and Kendall's tau-b
//	copula/   : the pair-copula Family contract, eight families, rotations,
//	            the family library and the maximum-likelihood estimator
//	selection/: log-likelihood model selection and the bootstrap goodness-of-fit test
//	vine/     : Graph/Node/Edge, maximum spanning trees (Prim, Kruskal) and the level driver
//
// Quick example:
//
//	v, err := vine.Build(ctx, columns, vine.WithSeed(7))
//	for _, tree := range v.Trees {
//		for _, pc := range tree.Pairs {
//			fmt.Println(pc.Edge.Label(), pc.Family.Name(), pc.Family.Params())
//		}
//	}
package rvine

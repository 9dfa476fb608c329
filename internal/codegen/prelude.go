package codegen

// prelude is the fixed runtime written at the top of every generated C
// file: the two includes the helper functions need, and the helper
// functions themselves. Every helper's contract is spec.md §4.6's; only
// the literal formatting is ours. Parameters use C99 VLA syntax so the
// same helper works for every matrix shape the program declares.
const prelude = `#include <stdio.h>
#include <math.h>

void neg_mat(int size1, int size2, double mat[size1][size2], double result[size1][size2])
{
	int i;
	int j;
	for (i = 0; i < size1; ++i) {
		for (j = 0; j < size2; ++j) {
			result[i][j] = -mat[i][j];
		}
	}
}

void mat_mat_add(int size1, int size2, double mat1[size1][size2], double mat2[size1][size2], double result[size1][size2])
{
	int i;
	int j;
	for (i = 0; i < size1; ++i) {
		for (j = 0; j < size2; ++j) {
			result[i][j] = mat1[i][j] + mat2[i][j];
		}
	}
}

void mat_mat_sub(int size1, int size2, double mat1[size1][size2], double mat2[size1][size2], double result[size1][size2])
{
	int i;
	int j;
	for (i = 0; i < size1; ++i) {
		for (j = 0; j < size2; ++j) {
			result[i][j] = mat1[i][j] - mat2[i][j];
		}
	}
}

void mat_mat_mul(int size1_1, int common_size, int size2_2, double mat1[size1_1][common_size], double mat2[common_size][size2_2], double result[size1_1][size2_2])
{
	int i;
	int j;
	int k;
	for (i = 0; i < size1_1; ++i) {
		for (j = 0; j < size2_2; ++j) {
			double sum = 0;
			for (k = 0; k < common_size; ++k) {
				sum += mat1[i][k] * mat2[k][j];
			}
			result[i][j] = sum;
		}
	}
}

double mat_mat_mul_s(int common_size, double mat1[1][common_size], double mat2[common_size][1])
{
	int k;
	double sum = 0;
	for (k = 0; k < common_size; ++k) {
		sum += mat1[0][k] * mat2[k][0];
	}
	return sum;
}

void mat_sca_mul(int size1, int size2, double scalar, double matrix[size1][size2], double result[size1][size2])
{
	int i;
	int j;
	for (i = 0; i < size1; ++i) {
		for (j = 0; j < size2; ++j) {
			result[i][j] = scalar * matrix[i][j];
		}
	}
}

void mat_assign(int size1, int size2, double mat[size1][size2], double result[size1][size2])
{
	int i;
	int j;
	for (i = 0; i < size1; ++i) {
		for (j = 0; j < size2; ++j) {
			result[i][j] = mat[i][j];
		}
	}
}

void tr(int size1, int size2, double matrix[size1][size2], double result[size2][size1])
{
	int i;
	int j;
	for (i = 0; i < size1; ++i) {
		for (j = 0; j < size2; ++j) {
			result[j][i] = matrix[i][j];
		}
	}
}

double choose(int condition, double first, double second, double third)
{
	if (condition == 0) {
		return first;
	} else if (condition > 0) {
		return second;
	} else {
		return third;
	}
}

void print(double value)
{
	printf("%g\n", value);
}

void print_mat(int size1, int size2, double matrix[size1][size2])
{
	int i;
	int j;
	for (i = 0; i < size1; ++i) {
		for (j = 0; j < size2; ++j) {
			double value = matrix[i][j];
			printf("%g", value);
			if (j != size2 - 1)
				printf("\t");
		}
		printf("\n");
	}
}

void printsep()
{
	printf("----------\n");
}
`
